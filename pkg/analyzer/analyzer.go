package analyzer

import (
	"context"
	"time"

	"github.com/lintang-b-s/navigatorx-junction/pkg"
	"github.com/lintang-b-s/navigatorx-junction/pkg/classify"
	"github.com/lintang-b-s/navigatorx-junction/pkg/concurrent"
	da "github.com/lintang-b-s/navigatorx-junction/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-junction/pkg/intersection"
	"github.com/paulmach/osm"
	"go.uber.org/zap"
)

type JunctionReport struct {
	Kind                string   `json:"kind"`
	Vertex              int64    `json:"vertex"`
	Lat                 float64  `json:"lat"`
	Lon                 float64  `json:"lon"`
	Segments            []string `json:"segments"`
	Turns               int      `json:"turns"`
	RestrictedTurns     int      `json:"restricted_turns"`
	NoExitSegments      []string `json:"no_exit_segments,omitempty"`
	SkippedRestrictions int      `json:"skipped_restrictions"`
}

type Analyzer struct {
	classifier *classify.Classifier
	builder    *intersection.Builder
	pool       *concurrent.WorkerPool[osm.NodeID, JunctionReport]
	logger     *zap.Logger
}

func NewAnalyzer(classifier *classify.Classifier, numWorkers int, logger *zap.Logger) *Analyzer {
	return &Analyzer{
		classifier: classifier,
		builder:    intersection.NewBuilder(classifier),
		pool:       concurrent.NewWorkerPool[osm.NodeID, JunctionReport](numWorkers),
		logger:     logger,
	}
}

// Junctions. nodes shared by more than one traversable highway segment, ascending id
func (a *Analyzer) Junctions(g *da.Graph) []osm.NodeID {
	nodeTypes := g.NodeTypes(a.classifier.IsTraversable)

	junctions := make([]osm.NodeID, 0)
	for _, id := range da.SortedKeys(nodeTypes) {
		if nodeTypes[id] == pkg.JUNCTION_NODE {
			junctions = append(junctions, id)
		}
	}
	return junctions
}

// Analyze. turn table of every junction, the snapshot is shared read-only between workers
func (a *Analyzer) Analyze(ctx context.Context, g *da.Graph) ([]JunctionReport, error) {
	start := time.Now()
	junctions := a.Junctions(g)
	a.logger.Sugar().Infof("analyzing %d junctions with %d workers...", len(junctions), a.pool.NumWorkers())

	reports, err := a.pool.Run(ctx, junctions, func(ctx context.Context, vertex osm.NodeID) (JunctionReport, error) {
		return a.analyzeJunction(g, vertex), nil
	})
	if err != nil {
		return nil, err
	}

	a.logger.Info("junction analysis done", zap.Int("junctions", len(reports)), zap.Duration("took", time.Since(start)))
	return reports, nil
}

func (a *Analyzer) analyzeJunction(g *da.Graph, vertex osm.NodeID) JunctionReport {
	in := a.builder.Build(g, vertex)

	report := JunctionReport{
		Kind:                "junction",
		Vertex:              int64(vertex),
		Segments:            make([]string, 0, len(in.GetSegments())),
		SkippedRestrictions: in.SkippedRestrictions(),
	}
	if node, ok := g.GetNode(vertex); ok {
		report.Lat = node.GetLat()
		report.Lon = node.GetLon()
	}

	table := in.TurnTable()
	for _, seg := range in.GetSegments() {
		id := seg.GetID()
		report.Segments = append(report.Segments, id.String())

		turns := table[id]
		if len(turns) == 0 && intersection.CanTravel(seg, vertex, intersection.ARRIVE) {
			report.NoExitSegments = append(report.NoExitSegments, id.String())
		}
		report.Turns += len(turns)
		for _, t := range turns {
			if t.Restricted {
				report.RestrictedTurns++
			}
		}
	}
	return report
}
