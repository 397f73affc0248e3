package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"littlelemon/internal/pkg/errs"
)

const maxTitleLength = 255

var (
	ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory or RestoreCategory")

	slugPattern    = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)
	nonSlugPattern = regexp.MustCompile(`[^a-z0-9]+`)
)

// Category groups menu items.
type Category struct {
	id    int64
	title string
	slug  string

	isConstructed bool
}

// NewCategory creates an unsaved category. An empty slug is derived from the title.
func NewCategory(title, slug string) (*Category, error) {
	c := &Category{isConstructed: true}
	if err := c.setTitle(title); err != nil {
		return nil, err
	}
	if strings.TrimSpace(slug) == "" {
		slug = Slugify(c.title)
	}
	if err := c.setSlug(slug); err != nil {
		return nil, err
	}
	return c, nil
}

// RestoreCategory rebuilds a persisted category.
func RestoreCategory(id int64, title, slug string) (*Category, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("category id")
	}
	return &Category{id: id, title: title, slug: slug, isConstructed: true}, nil
}

func (c *Category) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCategoryIsNotConstructed
	}
	return nil
}

// AssignID records the identity handed out by the store. It can be set only once.
func (c *Category) AssignID(id int64) error {
	if c.id != 0 || id <= 0 {
		return errs.NewValueIsInvalidError("category id")
	}
	c.id = id
	return nil
}

func (c *Category) ID() int64 {
	return c.id
}

func (c *Category) Title() string {
	return c.title
}

func (c *Category) Slug() string {
	return c.slug
}

// Update changes the given fields. Nothing changes when any field is invalid.
func (c *Category) Update(title, slug *string) error {
	next := *c
	var titleErr, slugErr error
	if title != nil {
		titleErr = next.setTitle(*title)
	}
	if slug != nil {
		slugErr = next.setSlug(*slug)
	}
	if err := errors.Join(titleErr, slugErr); err != nil {
		return err
	}
	*c = next
	return nil
}

func (c *Category) setTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	if len(title) > maxTitleLength {
		return errs.NewValueIsOutOfRangeError("title length", len(title), 1, maxTitleLength)
	}
	c.title = title
	return nil
}

func (c *Category) setSlug(slug string) error {
	slug = strings.TrimSpace(slug)
	if !slugPattern.MatchString(slug) {
		return errs.NewValueIsInvalidErrorWithCause("slug", fmt.Errorf("%q is not a valid slug", slug))
	}
	c.slug = slug
	return nil
}

// Slugify lowercases s and collapses every run of non alphanumerics into "-".
func Slugify(s string) string {
	return strings.Trim(nonSlugPattern.ReplaceAllString(strings.ToLower(s), "-"), "-")
}
