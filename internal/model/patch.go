package model

// ProductPatch carries a partial product update. Nil fields are left
// untouched on the stored record.
type ProductPatch struct {
	Name        *string
	Price       *float64
	Category    *string
	Img         *string
	Description *string
	Featured    *bool
}

// Apply merges the patch over the product, overwriting only supplied fields.
func (p *Product) Apply(patch ProductPatch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Img != nil {
		p.Img = *patch.Img
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Featured != nil {
		p.Featured = *patch.Featured
	}
}

// BlogPatch carries a partial blog update. The creation timestamp is not
// patchable.
type BlogPatch struct {
	Title    *string
	Author   *string
	Img      *string
	Content  *string
	Category *string
	Featured *bool
}

// Apply merges the patch over the blog post, overwriting only supplied fields.
func (b *Blog) Apply(patch BlogPatch) {
	if patch.Title != nil {
		b.Title = *patch.Title
	}
	if patch.Author != nil {
		b.Author = *patch.Author
	}
	if patch.Img != nil {
		b.Img = *patch.Img
	}
	if patch.Content != nil {
		b.Content = *patch.Content
	}
	if patch.Category != nil {
		b.Category = *patch.Category
	}
	if patch.Featured != nil {
		b.Featured = *patch.Featured
	}
}
