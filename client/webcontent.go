package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/edusphere/admin-client/model"
)

// GetHeroSection fetches the landing-page banner.
func (c *Client) GetHeroSection(ctx context.Context) (*model.HeroSection, error) {
	var hero model.HeroSection
	if err := c.get(ctx, "/web-content/hero", nil, &hero); err != nil {
		return nil, err
	}
	return &hero, nil
}

// UpdateHeroSection updates the banner. Multipart because it may carry a new
// image.
func (c *Client) UpdateHeroSection(ctx context.Context, fields map[string]string, image *FileUpload) (*model.HeroSection, error) {
	var files []FileUpload
	if image != nil {
		files = append(files, *image)
	}

	var hero model.HeroSection
	if err := c.doMultipart(ctx, http.MethodPut, "/web-content/hero", fields, files, &hero); err != nil {
		return nil, err
	}
	return &hero, nil
}

// ListCommonSections fetches all common content blocks.
func (c *Client) ListCommonSections(ctx context.Context) ([]model.CommonSection, error) {
	var sections []model.CommonSection
	if err := c.get(ctx, "/web-content/common-sections", nil, &sections); err != nil {
		return nil, err
	}
	return sections, nil
}

// UpdateCommonSection updates one content block.
func (c *Client) UpdateCommonSection(ctx context.Context, id uint, section model.CommonSection) (*model.CommonSection, error) {
	var updated model.CommonSection
	if err := c.put(ctx, fmt.Sprintf("/web-content/common-sections/%d", id), section, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
