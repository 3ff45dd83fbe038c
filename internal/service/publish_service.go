package service

import (
	"context"
	"fmt"
	"log"
	"regexp"

	apperrors "storecms/internal/errors"
	"storecms/internal/repository"
)

// PlatformFacebook is the only publish target currently supported.
const PlatformFacebook = "facebook"

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// Publisher posts a composed message to a social platform. The default
// implementation only logs; a real integration can be swapped in without
// touching the router or the service.
type Publisher interface {
	Publish(ctx context.Context, message, link, image string) error
}

// LogPublisher is the dry-run Publisher: it writes the would-be post to the
// operational log and makes no network call.
type LogPublisher struct{}

// NewLogPublisher creates the logging stand-in publisher.
func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

// Publish logs the composed post.
func (p *LogPublisher) Publish(ctx context.Context, message, link, image string) error {
	log.Println("--- Simulating Facebook Post ---")
	log.Printf("Content to be posted: %s", message)
	log.Printf("Link: %s", link)
	log.Printf("Image: %s", image)
	log.Println("--- Post Simulated Successfully ---")
	return nil
}

// PublishService composes a blog post into a social media message and hands
// it to the configured Publisher.
type PublishService interface {
	Publish(ctx context.Context, blogID int, platform string) (confirmation string, err error)
}

type publishService struct {
	blogRepo  repository.BlogRepository
	publisher Publisher
	baseURL   string
}

// NewPublishService creates a new publish service. baseURL is the public
// address used to build the post's link and image URLs.
func NewPublishService(blogRepo repository.BlogRepository, publisher Publisher, baseURL string) PublishService {
	return &publishService{
		blogRepo:  blogRepo,
		publisher: publisher,
		baseURL:   baseURL,
	}
}

// Publish looks up the post, strips markup from its content and publishes the
// message/link/image triple. Only the facebook platform is accepted.
func (s *publishService) Publish(ctx context.Context, blogID int, platform string) (string, error) {
	blog, err := s.blogRepo.FindByID(ctx, blogID)
	if err != nil {
		return "", err
	}

	if platform != PlatformFacebook {
		return "", apperrors.ErrUnsupportedPlatform
	}

	message := fmt.Sprintf("%s\n\n%s", blog.Title, StripHTML(blog.Content))
	link := fmt.Sprintf("%s/blog.html?id=%d", s.baseURL, blog.ID)
	image := s.baseURL + blog.Img

	if err := s.publisher.Publish(ctx, message, link, image); err != nil {
		return "", err
	}
	return `Post simulated and "published" to Facebook successfully!`, nil
}

// StripHTML removes markup tags from rich-text content, leaving plain text.
func StripHTML(content string) string {
	return htmlTagPattern.ReplaceAllString(content, "")
}
