package gallery

import "github.com/marcos-nsantos/photo-portfolio/internal/domain/entity"

const unsplash = "https://images.unsplash.com/"

func unsplashSrc(photo string) string {
	return unsplash + photo + "?q=80&w=1600&auto=format&fit=crop"
}

func seedExif(camera, lens string, focal float64, aperture, shutter string, iso int) *entity.Exif {
	return &entity.Exif{
		Camera:        camera,
		Lens:          lens,
		FocalLengthMm: &focal,
		Aperture:      aperture,
		Shutter:       shutter,
		ISO:           &iso,
	}
}

// SeedPhotos is the last-resort gallery shown when no other source is
// available. Each call returns a fresh copy.
func SeedPhotos() []entity.Photo {
	return []entity.Photo{
		{
			ID:     "alps-dawn",
			Src:    unsplashSrc("photo-1501785888041-af3ef285b470"),
			Alt:    "Soft dawn light over alpine peaks and a misty valley",
			Width:  1600,
			Height: 1066,
			Tags:   []string{"landscape", "mountains", "travel"},
			Exif:   seedExif("OM System OM-3", "M.Zuiko 12-45mm f/4 PRO", 12, "f/8", "1/125s", 200),
		},
		{
			ID:     "forest-fog",
			Src:    unsplashSrc("photo-1441974231531-c6227db76b6e"),
			Alt:    "Fog rolling through a dense evergreen forest",
			Width:  1600,
			Height: 1067,
			Tags:   []string{"landscape", "forest", "moody"},
			Exif:   seedExif("OM System OM-3", "M.Zuiko 45mm f/1.8", 45, "f/4", "1/60s", 400),
		},
		{
			ID:     "desert-dunes",
			Src:    unsplashSrc("photo-1507525428034-b723cf961d3e"),
			Alt:    "Golden sand dunes under a dramatic sky",
			Width:  1600,
			Height: 1066,
			Tags:   []string{"landscape", "desert", "travel"},
			Exif:   seedExif("OM System OM-3", "Panasonic Leica 9mm f/1.7", 9, "f/5.6", "1/500s", 200),
		},
		{
			ID:     "city-night",
			Src:    unsplashSrc("photo-1469474968028-56623f02e42e"),
			Alt:    "Neon-lit city street in the rain at night",
			Width:  1600,
			Height: 1067,
			Tags:   []string{"street", "night", "urban"},
		},
		{
			ID:     "portrait-window",
			Src:    unsplashSrc("photo-1494790108377-be9c29b29330"),
			Alt:    "Natural light portrait by a window",
			Width:  1600,
			Height: 1067,
			Tags:   []string{"portrait", "people", "studio"},
		},
		{
			ID:     "ocean-cliff",
			Src:    unsplashSrc("photo-1441974231531-c6227db76b6e"),
			Alt:    "Cliffs meeting the ocean with waves crashing below",
			Width:  1600,
			Height: 1067,
			Tags:   []string{"seascape", "travel", "landscape"},
		},
		{
			ID:     "northern-lights",
			Src:    unsplashSrc("photo-1504384308090-c894fdcc538d"),
			Alt:    "Aurora borealis over snowy mountains",
			Width:  1600,
			Height: 1067,
			Tags:   []string{"night", "astro", "landscape"},
		},
		{
			ID:     "street-crossing",
			Src:    unsplashSrc("photo-1470071459604-3b5ec3a7fe05"),
			Alt:    "People crossing a busy street with long shadows",
			Width:  1600,
			Height: 1067,
			Tags:   []string{"street", "urban", "travel"},
		},
		{
			ID:     "snowy-ridge",
			Src:    unsplashSrc("photo-1519681393784-d120267933ba"),
			Alt:    "Hiker on a snowy ridge line at golden hour",
			Width:  1600,
			Height: 1067,
			Tags:   []string{"adventure", "mountains", "travel"},
		},
		{
			ID:     "minimal-arch",
			Src:    unsplashSrc("photo-1491553895911-0055eca6402d"),
			Alt:    "Minimal architectural lines with strong contrast",
			Width:  1600,
			Height: 1067,
			Tags:   []string{"architecture", "minimal", "urban"},
		},
		{
			ID:     "café-portrait",
			Src:    unsplashSrc("photo-1503341560634-69ee8e0fd83f"),
			Alt:    "Candid portrait in a cozy café",
			Width:  1600,
			Height: 1067,
			Tags:   []string{"portrait", "street", "people"},
		},
		{
			ID:     "island-aerial",
			Src:    unsplashSrc("photo-1500530855697-b586d89ba3ee"),
			Alt:    "Aerial view of an island surrounded by turquoise water",
			Width:  1600,
			Height: 1067,
			Tags:   []string{"aerial", "seascape", "travel"},
		},
	}
}
