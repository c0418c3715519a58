package medialib

import (
	"github.com/cloudinary/cloudinary-go/v2"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/photo-portfolio/internal/infrastructure/config"
)

type Searcher = searcher

func NewCloudinaryWithSearcher(cld *cloudinary.Cloudinary, s Searcher, cfg config.CloudinaryConfig, logger *zap.Logger) *Cloudinary {
	return newCloudinary(cld, s, cfg, logger)
}
