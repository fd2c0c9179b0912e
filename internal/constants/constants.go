package constants

// Centralized constants for routes, env keys, JSON keys and log fields.
const (
	// Environment variable keys
	EnvConfigPath = "DUNGEONLOOP_CONFIG"
	EnvDBPath     = "DUNGEONLOOP_DB"
	EnvServerAddr = "DUNGEONLOOP_ADDR"

	// Route paths
	RouteAPIPrefix     = "/api"
	RouteLoops         = "/loops"
	RouteLoopResult    = "/loops/result"
	RouteLoopStatus    = "/loops/status"
	RouteResolveAttack = "/battles/resolve"
	RoutePlayers       = "/players"
	RoutePlayerByName  = "/players/:name"
	RouteLoopHistory   = "/loops/history"
	RouteBattleWS      = "/ws/battle"
	RouteHealth        = "/healthz"

	// JSON keys
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeyStatus  = "status"

	// Log field names
	LogFieldPlayer   = "player"
	LogFieldSpecies  = "species"
	LogFieldRarity   = "rarity"
	LogFieldLevel    = "level"
	LogFieldBattle   = "battle"
	LogFieldBattles  = "battles"
	LogFieldExp      = "exp"
	LogFieldGold     = "gold"
	LogFieldAddr     = "addr"
	LogFieldOutcome  = "outcome"
	LogFieldDuration = "duration_ms"

	// Error message strings returned by the API layer
	ErrInvalidRequest     = "invalid request payload"
	ErrPlayerNotFound     = "player not found"
	ErrLoopAlreadyRunning = "a battle loop is already running"
	ErrNoLoopRunning      = "no battle loop is running"
	ErrFailedStartLoop    = "failed to start battle loop"
	ErrFailedSavePlayer   = "failed to save player"
)

// DefaultConfigPath is used when DUNGEONLOOP_CONFIG is not set.
const DefaultConfigPath = "./dungeonloop_config.json"

// DefaultDBPath is used when DUNGEONLOOP_DB is not set.
const DefaultDBPath = "./data/dungeonloop.db"
