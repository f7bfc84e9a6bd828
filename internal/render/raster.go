package render

import (
	"bytes"
	"context"
	"fmt"
)

// PNGRasterizer turns a scene into PNG bytes at its natural size.
type PNGRasterizer struct{}

// Rasterize composes the scene at scale 1, ignoring the on-screen zoom.
func (PNGRasterizer) Rasterize(ctx context.Context, sc Scene) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if sc.Image == nil {
		return nil, nil
	}

	dc := compose(sc, 1)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
