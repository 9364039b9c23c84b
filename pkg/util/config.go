package util

import (
	"errors"
	"fmt"

	"github.com/lintang-b-s/navigatorx-junction/pkg"
	"github.com/spf13/viper"
)

// default tags used when the config file does not list its own.
var (
	// https://wiki.openstreetmap.org/wiki/Key:area
	DefaultAreaKeys = []string{
		"amenity", "area:highway", "building", "landuse", "leisure", "natural",
		"parking", "place", "shop", "tourism",
	}

	// tags that only make sense on a node that is part of a way
	DefaultVertexTags = []string{
		"highway=crossing", "highway=traffic_signals", "highway=stop", "highway=give_way",
		"highway=mini_roundabout", "barrier=gate", "barrier=bollard", "barrier=lift_gate",
		"railway=level_crossing", "noexit=yes",
	}

	// tags that only make sense on a standalone node
	DefaultPointTags = []string{
		"amenity=bench", "amenity=post_box", "amenity=atm", "tourism=information",
		"natural=tree", "man_made=survey_point",
	}
)

func setDefaults() {
	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "30s")
	viper.SetDefault("HTTP_SERVER_READ_TIMEOUT", "10s")
	viper.SetDefault("HTTP_SERVER_WRITE_TIMEOUT", "10s")
	viper.SetDefault("HTTP_SERVER_IDLE_TIMEOUT", "60s")
	viper.SetDefault("HTTP_SERVER_READ_HEADER_TIMEOUT", "5s")
	viper.SetDefault("RATE_LIMIT_RPS", 50)
	viper.SetDefault("RATE_LIMIT_BURST", 100)
	viper.SetDefault("OSM_FILE", "./data/map.osm.pbf")
	viper.SetDefault("AREA_KEYS", DefaultAreaKeys)
	viper.SetDefault("VERTEX_TAGS", DefaultVertexTags)
	viper.SetDefault("POINT_TAGS", DefaultPointTags)
	viper.SetDefault("MERGE_DISTANCE_METERS", pkg.DEFAULT_MERGE_DISTANCE_METERS)
	viper.SetDefault("SEARCH_RADIUS_KM", pkg.DEFAULT_SEARCH_RADIUS_KM)
	viper.SetDefault("WS_MAX_WORKERS", pkg.DEFAULT_WS_MAX_WORKERS)
}

// ReadConfig. read ./data/config.* ; a missing config file is not an error.
// HIGHWAY_VALUES has no default, an empty list means the routing highway enum (pkg.GetHighwayType).
func ReadConfig() error {
	setDefaults()
	viper.SetConfigName("config")
	viper.AddConfigPath("./data/")
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}
