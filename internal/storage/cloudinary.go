package storage

import (
	"context"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// ImageStore загрузка изображений товара во внешнее хранилище
type ImageStore interface {
	Upload(ctx context.Context, name string, r io.Reader) (string, error)
}

// Cloudinary реализация ImageStore поверх Cloudinary
type Cloudinary struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinary(cloudURL string) (*Cloudinary, error) {
	cld, err := cloudinary.NewFromURL(cloudURL)
	if err != nil {
		return nil, err
	}
	return &Cloudinary{cld: cld, folder: "products"}, nil
}

var _ ImageStore = (*Cloudinary)(nil)

func (c *Cloudinary) Upload(ctx context.Context, name string, r io.Reader) (string, error) {
	res, err := c.cld.Upload.Upload(ctx, r, uploader.UploadParams{Folder: c.folder})
	if err != nil {
		return "", err
	}
	return res.SecureURL, nil
}

// Placeholder подменяет хранилище в dev-режиме: каждая загрузка
// резолвится в одну и ту же картинку-заглушку
type Placeholder struct{}

var _ ImageStore = Placeholder{}

func (Placeholder) Upload(ctx context.Context, name string, r io.Reader) (string, error) {
	// drain so multipart readers are not left half-consumed
	_, _ = io.Copy(io.Discard, r)
	return "https://images.unsplash.com/photo-1523381210434-271e8be1f52b?auto=format&fit=crop&w=800&q=80", nil
}
