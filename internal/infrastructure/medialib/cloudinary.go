package medialib

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/admin/search"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/photo-portfolio/internal/domain/entity"
	"github.com/marcos-nsantos/photo-portfolio/internal/infrastructure/config"
	"github.com/marcos-nsantos/photo-portfolio/internal/infrastructure/imagemeta"
)

const (
	DefaultMaxResults   = 500
	DefaultDisplayWidth = 1600
)

type searcher interface {
	Search(ctx context.Context, params search.Query) (*admin.SearchResult, error)
}

// Cloudinary lists the portfolio images held in a Cloudinary account.
type Cloudinary struct {
	cld          *cloudinary.Cloudinary
	search       searcher
	folder       string
	maxResults   int
	displayWidth int
	logger       *zap.Logger
}

// NewCloudinary returns nil and no error when no credentials are configured.
func NewCloudinary(cfg config.CloudinaryConfig, logger *zap.Logger) (*Cloudinary, error) {
	if !cfg.Configured() {
		return nil, nil
	}

	var (
		cld *cloudinary.Cloudinary
		err error
	)
	if cfg.URL != "" {
		cld, err = cloudinary.NewFromURL(cfg.URL)
	} else {
		cld, err = cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	}
	if err != nil {
		return nil, fmt.Errorf("creating cloudinary client: %w", err)
	}
	cld.Config.URL.Secure = true

	return newCloudinary(cld, &cld.Admin, cfg, logger), nil
}

func newCloudinary(cld *cloudinary.Cloudinary, s searcher, cfg config.CloudinaryConfig, logger *zap.Logger) *Cloudinary {
	c := &Cloudinary{
		cld:          cld,
		search:       s,
		folder:       cfg.Folder,
		maxResults:   cfg.MaxResults,
		displayWidth: cfg.DisplayWidth,
		logger:       logger,
	}
	if c.maxResults <= 0 || c.maxResults > DefaultMaxResults {
		c.maxResults = DefaultMaxResults
	}
	if c.displayWidth <= 0 {
		c.displayWidth = DefaultDisplayWidth
	}
	return c
}

func (c *Cloudinary) expression() string {
	if c.folder != "" {
		return "folder:" + c.folder
	}
	return "resource_type:image"
}

// ListResources returns up to maxResults images, newest upload first.
func (c *Cloudinary) ListResources(ctx context.Context) ([]entity.RemoteResource, error) {
	resp, err := c.search.Search(ctx, search.Query{
		Expression: c.expression(),
		SortBy:     []search.SortByField{{"created_at": search.Descending}},
		MaxResults: c.maxResults,
		WithField:  []string{"tags", "image_metadata"},
	})
	if err != nil {
		return nil, fmt.Errorf("searching cloudinary: %w", err)
	}
	if resp.Error.Message != "" {
		return nil, fmt.Errorf("searching cloudinary: %s", resp.Error.Message)
	}

	resources := make([]entity.RemoteResource, 0, len(resp.Assets))
	for _, a := range resp.Assets {
		res := entity.RemoteResource{
			PublicID:  a.PublicID,
			Format:    a.Format,
			Width:     a.Width,
			Height:    a.Height,
			CreatedAt: a.CreatedAt,
			URL:       a.SecureURL,
			Tags:      a.Tags,
		}
		if display, err := c.displayURL(a.PublicID); err == nil {
			res.DisplayURL = display
		} else {
			c.logger.Debug("building delivery url", zap.String("public_id", a.PublicID), zap.Error(err))
		}
		if len(a.ImageMetadata) > 0 {
			fields := make(map[string]string, len(a.ImageMetadata))
			for k, v := range a.ImageMetadata {
				fields[k] = fmt.Sprint(v)
			}
			if meta := imagemeta.FromFields(fields); !meta.IsEmpty() {
				res.Metadata = meta
			}
		}
		resources = append(resources, res)
	}

	c.logger.Debug("cloudinary listing", zap.String("expression", c.expression()), zap.Int("resources", len(resources)))
	return resources, nil
}

// displayURL is a width-limited, auto-format delivery URL for publicID.
func (c *Cloudinary) displayURL(publicID string) (string, error) {
	img, err := c.cld.Image(publicID)
	if err != nil {
		return "", err
	}
	img.Transformation = fmt.Sprintf("c_limit,w_%d,q_auto,f_auto", c.displayWidth)
	return img.String()
}
