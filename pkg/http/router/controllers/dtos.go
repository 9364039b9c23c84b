package controllers

import (
	"github.com/lintang-b-s/navigatorx-junction/pkg/intersection"
	"github.com/lintang-b-s/navigatorx-junction/pkg/validation"
)

type intersectionRequest struct {
	NodeID int64 `json:"node_id" validate:"required"`
}

type turnsRequest struct {
	NodeID int64  `json:"node_id" validate:"required"`
	From   string `json:"from" validate:"required,max=32"`
}

type nearestIntersectionRequest struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lon float64 `json:"lon" validate:"min=-180,max=180"`
}

type wayIssuesRequest struct {
	WayID int64 `json:"way_id" validate:"required"`
}

type segmentResponse struct {
	ID        string            `json:"id"`
	Way       int64             `json:"way"`
	Nodes     []int64           `json:"nodes"`
	Tags      map[string]string `json:"tags"`
	CanArrive bool              `json:"can_arrive"`
	CanDepart bool              `json:"can_depart"`
	Polyline  string            `json:"polyline"`
}

type intersectionResponse struct {
	Vertex              int64             `json:"vertex"`
	Lat                 float64           `json:"lat"`
	Lon                 float64           `json:"lon"`
	Segments            []segmentResponse `json:"segments"`
	SkippedRestrictions int               `json:"skipped_restrictions"`
	Distance            *float64          `json:"distance,omitempty"`
}

type turnEndResponse struct {
	Node    int64  `json:"node"`
	Segment string `json:"segment"`
}

type turnResponse struct {
	From            turnEndResponse `json:"from"`
	Via             int64           `json:"via"`
	To              turnEndResponse `json:"to"`
	Restriction     int64           `json:"restriction,omitempty"`
	Restricted      bool            `json:"restricted"`
	RestrictionKind string          `json:"restriction_kind,omitempty"`
	Direction       string          `json:"direction"`
}

type turnsResponse struct {
	Vertex int64          `json:"vertex"`
	From   string         `json:"from"`
	Turns  []turnResponse `json:"turns"`
}

type fixResponse struct {
	Type  string  `json:"type"`
	Nodes []int64 `json:"nodes"`
}

type issueResponse struct {
	Type  string        `json:"type"`
	Way   int64         `json:"way,omitempty"`
	Node  int64         `json:"node,omitempty"`
	Fixes []fixResponse `json:"fixes"`
}

func NewIntersectionResponse(in *intersection.Intersection, service IntersectionService) intersectionResponse {
	resp := intersectionResponse{
		Vertex:              int64(in.GetVertex()),
		Segments:            make([]segmentResponse, 0, len(in.GetSegments())),
		SkippedRestrictions: in.SkippedRestrictions(),
	}
	if c, ok := service.NodeCoordinate(in.GetVertex()); ok {
		resp.Lat = c.GetLat()
		resp.Lon = c.GetLon()
	}

	for _, seg := range in.GetSegments() {
		nodes := make([]int64, len(seg.GetNodes()))
		for i, n := range seg.GetNodes() {
			nodes[i] = int64(n)
		}
		resp.Segments = append(resp.Segments, segmentResponse{
			ID:        seg.GetID().String(),
			Way:       int64(seg.GetWayID()),
			Nodes:     nodes,
			Tags:      seg.GetTags(),
			CanArrive: intersection.CanTravel(seg, in.GetVertex(), intersection.ARRIVE),
			CanDepart: intersection.CanTravel(seg, in.GetVertex(), intersection.DEPART),
			Polyline:  service.SegmentPolyline(seg.GetNodes()),
		})
	}
	return resp
}

func NewTurnsResponse(in *intersection.Intersection, from string, turns []intersection.Turn) turnsResponse {
	resp := turnsResponse{
		Vertex: int64(in.GetVertex()),
		From:   from,
		Turns:  make([]turnResponse, 0, len(turns)),
	}
	for _, t := range turns {
		tr := turnResponse{
			From:       turnEndResponse{Node: int64(t.From.Node), Segment: t.From.Segment.String()},
			Via:        int64(t.Via.Node),
			To:         turnEndResponse{Node: int64(t.To.Node), Segment: t.To.Segment.String()},
			Restricted: t.Restricted,
			Direction:  t.Direction.String(),
		}
		if t.Restricted {
			tr.Restriction = int64(t.Restriction)
			tr.RestrictionKind = t.RestrictionKind.String()
		}
		resp.Turns = append(resp.Turns, tr)
	}
	return resp
}

func NewIssuesResponse(issues []validation.Issue) []issueResponse {
	resp := make([]issueResponse, 0, len(issues))
	for _, issue := range issues {
		ir := issueResponse{
			Type:  string(issue.Type),
			Way:   int64(issue.Way),
			Node:  int64(issue.Node),
			Fixes: make([]fixResponse, 0, len(issue.Fixes)),
		}
		for _, f := range issue.Fixes {
			nodes := make([]int64, len(f.Way.GetNodes()))
			for i, n := range f.Way.GetNodes() {
				nodes[i] = int64(n)
			}
			ir.Fixes = append(ir.Fixes, fixResponse{Type: string(f.Type), Nodes: nodes})
		}
		resp = append(resp, ir)
	}
	return resp
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
