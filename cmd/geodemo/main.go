package main

import (
	"flag"
	"math"
	"os"
	"strings"

	kitlog "github.com/go-kit/kit/log"
	"github.com/spf13/viper"

	"github.com/antoinebarre/yggdrasil"
)

// This program only reads a site scenario and reports the reference-frame
// quantities at that site: ECEF coordinates, the geodetic round trip, the
// local NED/ENU frame matrices and the J2 gravity vector.

const defaultScenario = "~~unset~~"

var scenario string

func init() {
	flag.StringVar(&scenario, "scenario", defaultScenario, "site scenario TOML file")
}

func main() {
	flag.Parse()
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	logger = kitlog.With(logger, "app", "geodemo")

	if scenario == defaultScenario {
		logger.Log("error", "no scenario provided")
		os.Exit(1)
	}
	scenario = strings.Replace(scenario, ".toml", "", 1)
	viper.AddConfigPath(".")
	viper.SetConfigName(scenario)
	if err := viper.ReadInConfig(); err != nil {
		logger.Log("error", err, "scenario", scenario+".toml")
		os.Exit(1)
	}

	modelName := viper.GetString("site.ellipsoid")
	if modelName == "" {
		modelName = "WGS84"
	}
	model, err := yggdrasil.EllipsoidFromName(modelName)
	if err != nil {
		logger.Log("error", err)
		os.Exit(1)
	}

	// Signed angles stay signed so the round-trip comparison below sees the
	// same ranges ECEF2LLA produces.
	lat := viper.GetFloat64("site.latitude") * math.Pi / 180
	lon := viper.GetFloat64("site.longitude") * math.Pi / 180
	alt := viper.GetFloat64("site.altitude")
	site := yggdrasil.NewGeographicPosition(lat, lon, alt, model)
	logger.Log("ellipsoid", model.Name, "lat", lat, "lon", lon, "alt", alt)

	ecef := yggdrasil.LLA2ECEF(site)
	logger.Log("frame", "ECEF", "x", ecef.X, "y", ecef.Y, "z", ecef.Z, "norm", ecef.Norm())

	back := yggdrasil.ECEF2LLA(ecef, model)
	logger.Log("roundtrip", back.EqualWithin(site, 1e-9), "lat", back.Latitude, "lon", back.Longitude, "alt", back.Altitude)

	ned := yggdrasil.DCMECEF2NED(lat, lon)
	enu := yggdrasil.DCMECEF2ENU(lat, lon)
	logger.Log("dcm", "ecef2ned", "det", ned.Det())
	logger.Log("dcm", "ecef2enu", "det", enu.Det())

	dt := viper.GetFloat64("eci.elapsed")
	eci2ecef, err := yggdrasil.DCMECI2ECEF(dt, yggdrasil.EarthRotationRate)
	if err != nil {
		logger.Log("error", err)
		os.Exit(1)
	}
	yaw, pitch, roll, err := yggdrasil.DCM2Angle(eci2ecef, "ZYX")
	if err != nil {
		logger.Log("error", err)
		os.Exit(1)
	}
	logger.Log("dcm", "eci2ecef", "dt", dt, "yaw", yaw, "pitch", pitch, "roll", roll)

	g, err := yggdrasil.Gravity(ecef, model)
	if err != nil {
		logger.Log("error", err)
		os.Exit(1)
	}
	logger.Log("gravity", g.Norm(), "gx", g.X, "gy", g.Y, "gz", g.Z)
}
