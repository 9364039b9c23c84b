package main

import (
	"context"
	"flag"

	"github.com/lintang-b-s/navigatorx-junction/pkg/classify"
	da "github.com/lintang-b-s/navigatorx-junction/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-junction/pkg/http"
	"github.com/lintang-b-s/navigatorx-junction/pkg/http/usecases"
	"github.com/lintang-b-s/navigatorx-junction/pkg/intersection"
	"github.com/lintang-b-s/navigatorx-junction/pkg/logger"
	"github.com/lintang-b-s/navigatorx-junction/pkg/osmparser"
	"github.com/lintang-b-s/navigatorx-junction/pkg/spatialindex"
	"github.com/lintang-b-s/navigatorx-junction/pkg/util"
	"github.com/lintang-b-s/navigatorx-junction/pkg/validation"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	mapFile      = flag.String("f", "", "openstreetmap file (.osm.pbf, .osm, .osm.bz2), overrides OSM_FILE")
	useRateLimit = flag.Bool("rate_limit", false, "enable the global rate limiter")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	if err := util.ReadConfig(); err != nil {
		panic(err)
	}
	if *mapFile != "" {
		viper.Set("OSM_FILE", *mapFile)
	}

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}

	classifier := classify.NewClassifierFromConfig()
	osmParser := osmparser.NewOSMParser(logger, func(tags da.Tags) bool {
		return classifier.IsHighwayTag(tags) || classifier.IsAreaTag(tags)
	})
	graph, err := osmParser.Parse(ctx, viper.GetString("OSM_FILE"))
	if err != nil {
		panic(err)
	}

	rtree := spatialindex.NewRtree()
	rtree.Build(graph, classifier.IsTraversable, logger)

	validator := validation.NewValidator(classifier, viper.GetFloat64("MERGE_DISTANCE_METERS"))
	intersectionService := usecases.NewIntersectionService(logger, graph, intersection.NewBuilder(classifier), rtree,
		validator, viper.GetFloat64("SEARCH_RADIUS_KM"))

	api := http.NewServer(logger)
	api.Use(ctx, logger, *useRateLimit, intersectionService)

	signal := http.GracefulShutdown()

	logger.Info("Navigatorx Junction Server Stopped", zap.String("signal", signal.String()))
	cleanup()
	if err := api.Wait(); err != nil && err != context.Canceled {
		logger.Error("api stopped with error", zap.Error(err))
	}
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
