package main

import (
	"context"
	"flag"

	"github.com/lintang-b-s/navigatorx-junction/pkg/analyzer"
	"github.com/lintang-b-s/navigatorx-junction/pkg/classify"
	da "github.com/lintang-b-s/navigatorx-junction/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-junction/pkg/logger"
	"github.com/lintang-b-s/navigatorx-junction/pkg/osmparser"
	"github.com/lintang-b-s/navigatorx-junction/pkg/util"
	"github.com/lintang-b-s/navigatorx-junction/pkg/validation"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	mapFile    = flag.String("f", "", "openstreetmap file (.osm.pbf, .osm, .osm.bz2), overrides OSM_FILE")
	outFile    = flag.String("o", "./data/junctions.jsonl.bz2", "report output file (bzip2 json lines)")
	numWorkers = flag.Int("workers", 0, "number of workers, <= 0 means GOMAXPROCS")
)

// analyzer. offline pass over a whole extract: turn tables of every junction + geometry issues of every way/node.
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

	ctx := context.Background()

	classifier := classify.NewClassifierFromConfig()
	osmParser := osmparser.NewOSMParser(logger, func(tags da.Tags) bool {
		return classifier.IsHighwayTag(tags) || classifier.IsAreaTag(tags)
	})
	graph, err := osmParser.Parse(ctx, viper.GetString("OSM_FILE"))
	if err != nil {
		panic(err)
	}

	junctions, err := analyzer.NewAnalyzer(classifier, *numWorkers, logger).Analyze(ctx, graph)
	if err != nil {
		panic(err)
	}

	issues := validation.NewValidator(classifier, viper.GetFloat64("MERGE_DISTANCE_METERS")).ValidateGraph(graph)

	if err := analyzer.WriteReportFile(*outFile, junctions, issues); err != nil {
		panic(err)
	}

	logger.Info("analysis completed", zap.Int("junctions", len(junctions)), zap.Int("issues", len(issues)),
		zap.String("output", *outFile))
}
