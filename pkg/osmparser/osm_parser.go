package osmparser

import (
	"context"
	"fmt"

	da "github.com/lintang-b-s/navigatorx-junction/pkg/datastructure"
	"github.com/paulmach/osm"
	"go.uber.org/zap"
)

// WayFilter. ways rejected by the filter are not part of the snapshot
type WayFilter func(tags da.Tags) bool

func AcceptTaggedWays(tags da.Tags) bool {
	return len(tags) > 0
}

type OsmParser struct {
	acceptWay WayFilter
	logger    *zap.Logger
}

func NewOSMParser(logger *zap.Logger, acceptWay WayFilter) *OsmParser {
	if acceptWay == nil {
		acceptWay = AcceptTaggedWays
	}
	return &OsmParser{
		acceptWay: acceptWay,
		logger:    logger,
	}
}

/*
Parse. 2 pass, sama seperti parser pbf routing:

	pass 1: ways (filtered) + restriction relations, remember the node ids they reference
	pass 2: nodes referenced in pass 1 + tagged nodes

ways with less than 2 node refs are dropped. nodes referenced by a way but missing from the file
are removed from the way, so the snapshot keeps referential integrity.
*/ // nolint: gofmt
func (p *OsmParser) Parse(ctx context.Context, mapFile string) (*da.Graph, error) {
	neededNodes := make(map[osm.NodeID]struct{})
	ways := make([]*osm.Way, 0)
	relations := make([]*osm.Relation, 0)

	countWays := 0
	err := p.scan(ctx, mapFile, func(o osm.Object) {
		switch o.ObjectID().Type() {
		case osm.TypeWay:
			way := o.(*osm.Way)
			if len(way.Nodes) < 2 {
				return
			}
			if !p.acceptWay(da.NewTagsFromOSM(way.Tags)) {
				return
			}
			if (countWays+1)%50000 == 0 {
				p.logger.Sugar().Infof("scanning openstreetmap ways: %d...", countWays+1)
			}
			countWays++

			for _, node := range way.Nodes {
				neededNodes[node.ID] = struct{}{}
			}
			ways = append(ways, way)
		case osm.TypeRelation:
			relation := o.(*osm.Relation)
			if relation.Tags.Find("type") != "restriction" {
				return
			}
			for _, member := range relation.Members {
				if member.Type == osm.TypeNode {
					neededNodes[osm.NodeID(member.Ref)] = struct{}{}
				}
			}
			relations = append(relations, relation)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("scan ways & relations of %s: %w", mapFile, err)
	}

	b := da.NewGraphBuilder()
	loadedNodes := make(map[osm.NodeID]struct{}, len(neededNodes))
	countNodes := 0
	err = p.scan(ctx, mapFile, func(o osm.Object) {
		if o.ObjectID().Type() != osm.TypeNode {
			return
		}
		node := o.(*osm.Node)
		if _, ok := neededNodes[node.ID]; !ok && len(node.Tags) == 0 {
			return
		}
		if (countNodes+1)%100000 == 0 {
			p.logger.Sugar().Infof("scanning openstreetmap nodes: %d...", countNodes+1)
		}
		countNodes++
		loadedNodes[node.ID] = struct{}{}
		b.AddNode(da.NewNode(node.ID, node.Lat, node.Lon, da.NewTagsFromOSM(node.Tags)))
	})
	if err != nil {
		return nil, fmt.Errorf("scan nodes of %s: %w", mapFile, err)
	}

	for _, way := range ways {
		nodes := make([]osm.NodeID, 0, len(way.Nodes))
		for _, n := range way.Nodes {
			if _, ok := loadedNodes[n.ID]; ok {
				nodes = append(nodes, n.ID)
			}
		}
		if len(nodes) < 2 {
			continue
		}
		b.AddWay(da.NewWay(way.ID, nodes, da.NewTagsFromOSM(way.Tags)))
	}
	for _, relation := range relations {
		b.AddRelation(da.NewRelation(relation.ID, da.NewTagsFromOSM(relation.Tags), da.NewMembersFromOSM(relation.Members)))
	}

	g := b.Build()
	p.logger.Sugar().Infof("loaded %s: %d nodes, %d ways, %d restriction relations",
		mapFile, g.NumberOfNodes(), g.NumberOfWays(), g.NumberOfRelations())
	return g, nil
}

func (p *OsmParser) scan(ctx context.Context, mapFile string, handle func(o osm.Object)) error {
	scanner, closer, err := openScanner(ctx, mapFile)
	if err != nil {
		return err
	}
	defer closer.Close()

	// must not be parallel
	for scanner.Scan() {
		handle(scanner.Object())
	}
	return scanner.Err()
}
