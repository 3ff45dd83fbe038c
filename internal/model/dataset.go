package model

// Dataset is the full durable document: both collections plus the persisted
// ID counters. Counters live alongside the collections so IDs stay monotonic
// across deletions; files written before the counters existed load fine and
// get them backfilled from the highest seen ID.
type Dataset struct {
	Products      []Product `json:"products"`
	Blogs         []Blog    `json:"blogs"`
	NextProductID int       `json:"nextProductId,omitempty"`
	NextBlogID    int       `json:"nextBlogId,omitempty"`
}

// NewDataset returns the empty default document.
func NewDataset() *Dataset {
	return &Dataset{
		Products:      []Product{},
		Blogs:         []Blog{},
		NextProductID: 1,
		NextBlogID:    1,
	}
}

// Normalize backfills missing counters on datasets loaded from legacy files
// and guarantees non-nil slices so the API always serializes arrays.
func (d *Dataset) Normalize() {
	if d.Products == nil {
		d.Products = []Product{}
	}
	if d.Blogs == nil {
		d.Blogs = []Blog{}
	}
	if d.NextProductID < 1 {
		d.NextProductID = 1
		for _, p := range d.Products {
			if p.ID >= d.NextProductID {
				d.NextProductID = p.ID + 1
			}
		}
	}
	if d.NextBlogID < 1 {
		d.NextBlogID = 1
		for _, b := range d.Blogs {
			if b.ID >= d.NextBlogID {
				d.NextBlogID = b.ID + 1
			}
		}
	}
}
