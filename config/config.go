package config

import (
	"os"
	"strconv"

	"github.com/battlesnakeio/torus/board"
	"github.com/battlesnakeio/torus/rules"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Configuration variables. The defaults are the classic 640x480 field with
// 20px cells ticking at 20Hz; the environment can override each of them.
var (
	CellSize        = getEnvInt("TORUS_CELL_SIZE", board.DefaultCellSize)
	FieldWidth      = getEnvInt("TORUS_FIELD_WIDTH", board.DefaultFieldWidth)
	FieldHeight     = getEnvInt("TORUS_FIELD_HEIGHT", board.DefaultFieldHeight)
	TickRate        = rate.Limit(getEnvInt("TORUS_TICK_RATE", 20))
	CollisionPolicy = getEnvPolicy("TORUS_COLLISION_POLICY", rules.DefaultCollisionPolicy)
)

// Board returns the configured board geometry.
func Board() board.Board {
	return board.Board{
		CellSize:    CellSize,
		FieldWidth:  FieldWidth,
		FieldHeight: FieldHeight,
	}
}

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil || intVal <= 0 {
		log.WithField("var", varName).
			WithField("value", val).
			Warn("ignoring invalid value, using default")
		return defaults
	}
	return int(intVal)
}

func getEnvPolicy(varName string, defaults rules.CollisionPolicy) rules.CollisionPolicy {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	policy, err := rules.ParseCollisionPolicy(val)
	if err != nil {
		log.WithError(err).
			WithField("var", varName).
			Warn("ignoring invalid value, using default")
		return defaults
	}
	return policy
}
