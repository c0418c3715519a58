package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marcos-nsantos/photo-portfolio/internal/domain"
	"github.com/marcos-nsantos/photo-portfolio/internal/domain/entity"
)

type PhotoRepo struct {
	pool *pgxpool.Pool
}

func NewPhotoRepo(pool *pgxpool.Pool) *PhotoRepo {
	return &PhotoRepo{pool: pool}
}

type exifColumn struct {
	Camera        string   `json:"camera,omitempty"`
	Lens          string   `json:"lens,omitempty"`
	FocalLengthMm *float64 `json:"focalLengthMm,omitempty"`
	Aperture      string   `json:"aperture,omitempty"`
	Shutter       string   `json:"shutter,omitempty"`
	ISO           *int     `json:"iso,omitempty"`
}

func encodeExif(e *entity.Exif) ([]byte, error) {
	if e == nil {
		return nil, nil
	}
	return json.Marshal(exifColumn(*e))
}

func decodeExif(data []byte) (*entity.Exif, error) {
	if data == nil {
		return nil, nil
	}
	var col exifColumn
	if err := json.Unmarshal(data, &col); err != nil {
		return nil, err
	}
	e := entity.Exif(col)
	return &e, nil
}

const selectPhotos = `
	SELECT id, src, src_full, alt, width, height, tags, created_at, exif
	FROM photos
`

func scanPhoto(row pgx.Row) (entity.Photo, error) {
	var (
		p         entity.Photo
		createdAt *time.Time
		exif      []byte
	)
	if err := row.Scan(&p.ID, &p.Src, &p.SrcFull, &p.Alt, &p.Width, &p.Height, &p.Tags, &createdAt, &exif); err != nil {
		return entity.Photo{}, err
	}
	if createdAt != nil {
		t := createdAt.UTC()
		p.CreatedAt = &t
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	e, err := decodeExif(exif)
	if err != nil {
		return entity.Photo{}, fmt.Errorf("decoding exif of %s: %w", p.ID, err)
	}
	p.Exif = e
	return p, nil
}

// Load returns the stored records in the order they were saved. An empty
// table means nothing has been generated yet.
func (r *PhotoRepo) Load(ctx context.Context) ([]entity.Photo, error) {
	rows, err := r.pool.Query(ctx, selectPhotos+` ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying photos: %w", err)
	}
	defer rows.Close()

	var photos []entity.Photo
	for rows.Next() {
		photo, err := scanPhoto(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning photo: %w", err)
		}
		photos = append(photos, photo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating photos: %w", err)
	}

	if len(photos) == 0 {
		return nil, fmt.Errorf("loading photos: %w", domain.ErrSourceUnavailable)
	}
	return photos, nil
}

// Save replaces the whole record set in one transaction.
func (r *PhotoRepo) Save(ctx context.Context, photos []entity.Photo) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM photos`); err != nil {
			return fmt.Errorf("clearing photos: %w", err)
		}

		query := `
			INSERT INTO photos (id, position, src, src_full, alt, width, height, tags, created_at, exif)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		`
		batch := &pgx.Batch{}
		for i, p := range photos {
			exif, err := encodeExif(p.Exif)
			if err != nil {
				return fmt.Errorf("encoding exif of %s: %w", p.ID, err)
			}
			tags := p.Tags
			if tags == nil {
				tags = []string{}
			}
			batch.Queue(query, p.ID, i, p.Src, p.SrcFull, p.Alt, p.Width, p.Height, tags, p.CreatedAt, exif)
		}

		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("inserting photos: %w", err)
		}
		return nil
	})
}

func (r *PhotoRepo) UpdateTags(ctx context.Context, id string, tags []string) (*entity.Photo, error) {
	if tags == nil {
		tags = []string{}
	}
	query := `
		UPDATE photos SET tags = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, src, src_full, alt, width, height, tags, created_at, exif
	`
	photo, err := scanPhoto(r.pool.QueryRow(ctx, query, id, tags))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPhotoNotFound
		}
		return nil, fmt.Errorf("updating photo tags: %w", err)
	}
	return &photo, nil
}
