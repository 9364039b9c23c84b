package osmparser

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
)

type closers []io.Closer

func (cs closers) Close() error {
	var firstErr error
	for _, c := range cs {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// openScanner. .osm.pbf/.pbf -> osmpbf, .osm.bz2 -> bzip2 + osmxml, .osm -> osmxml
func openScanner(ctx context.Context, mapFile string) (osm.Scanner, io.Closer, error) {
	if !strings.HasSuffix(mapFile, ".pbf") && !strings.HasSuffix(mapFile, ".osm.bz2") && !strings.HasSuffix(mapFile, ".osm") {
		return nil, nil, fmt.Errorf("unsupported osm file %s: expected .osm, .osm.bz2 or .pbf", mapFile)
	}

	f, err := os.Open(mapFile)
	if err != nil {
		return nil, nil, err
	}

	switch {
	case strings.HasSuffix(mapFile, ".pbf"):
		scanner := osmpbf.New(ctx, f, runtime.GOMAXPROCS(-1))
		return scanner, closers{scanner, f}, nil
	case strings.HasSuffix(mapFile, ".osm.bz2"):
		bz, err := bzip2.NewReader(f, nil)
		if err != nil {
			f.Close()
			return nil, nil, err
		}
		scanner := osmxml.New(ctx, bz)
		return scanner, closers{scanner, bz, f}, nil
	default:
		scanner := osmxml.New(ctx, f)
		return scanner, closers{scanner, f}, nil
	}
}
