package server

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 进程级配置，由 LoadConfig 从默认值、YAML 文件与环境变量合成
type Config struct {
	Server   NetConfig      `mapstructure:"server"`
	Loop     LoopConfig     `mapstructure:"loop"`
	Room     RoomConfig     `mapstructure:"room"`
	Session  SessionConfig  `mapstructure:"session"`
	Identity IdentityConfig `mapstructure:"identity"`
	Log      LogConfig      `mapstructure:"log"`
	Admin    AdminConfig    `mapstructure:"admin"`
}

type NetConfig struct {
	Transport     string `mapstructure:"transport"` // quic | websocket
	Addr          string `mapstructure:"addr"`
	WebSocketPath string `mapstructure:"websocket_path"`
	MaxClients    int    `mapstructure:"max_clients"`
	CertFile      string `mapstructure:"cert_file"`
	KeyFile       string `mapstructure:"key_file"`
}

type LoopConfig struct {
	TickRate    int           `mapstructure:"tick_rate"`
	PollTimeout time.Duration `mapstructure:"poll_timeout"`
}

// FrameInterval 每帧时长，30 TPS 时为 33ms
func (c LoopConfig) FrameInterval() time.Duration {
	return time.Duration(1000/c.TickRate) * time.Millisecond
}

type SessionConfig struct {
	FirstPlayerSequence int32 `mapstructure:"first_player_sequence"`
	FirstSessionKey     int32 `mapstructure:"first_session_key"`
}

type IdentityConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	SQLitePath string `mapstructure:"sqlite_path"`
}

type AdminConfig struct {
	Addr string `mapstructure:"addr"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.transport", "quic")
	v.SetDefault("server.addr", ":7775")
	v.SetDefault("server.websocket_path", "/ws")
	v.SetDefault("server.max_clients", 100)
	v.SetDefault("server.cert_file", "")
	v.SetDefault("server.key_file", "")

	v.SetDefault("loop.tick_rate", 30)
	v.SetDefault("loop.poll_timeout", "1ms")

	rc := DefaultRoomConfig()
	v.SetDefault("room.max_players", rc.MaxPlayers)
	v.SetDefault("room.disconnect_timeout_ms", rc.DisconnectTimeoutMs)
	v.SetDefault("room.cleanup_timeout_ms", rc.CleanupTimeoutMs)
	v.SetDefault("room.death_remove_delay_ms", rc.DeathRemoveDelayMs)
	v.SetDefault("room.respawn_delay_ms", rc.RespawnDelayMs)
	v.SetDefault("room.attack_range", rc.AttackRange)
	v.SetDefault("room.hit_radius", rc.HitRadius)
	v.SetDefault("room.attack_damage", rc.AttackDamage)
	v.SetDefault("room.sync_split_limit", rc.SyncSplitLimit)
	v.SetDefault("room.half_extent", rc.HalfExtent)
	v.SetDefault("room.wall_count", rc.WallCount)
	v.SetDefault("room.seed", rc.Seed)

	v.SetDefault("session.first_player_sequence", 1000)
	v.SetDefault("session.first_session_key", 10000)

	v.SetDefault("identity.enabled", false)
	v.SetDefault("identity.sqlite_path", "identity.db")

	v.SetDefault("log.file", "smuggler.log")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 7)
	v.SetDefault("log.console", true)

	v.SetDefault("admin.addr", ":8081")
}

// LoadConfig 读取配置；path 为空时只用默认值与环境变量（SMUGGLER_ROOM_MAX_PLAYERS 等）
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("smuggler")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	switch c.Server.Transport {
	case "quic", "websocket":
	default:
		errs = append(errs, fmt.Errorf("server.transport: unknown %q", c.Server.Transport))
	}
	if c.Loop.TickRate <= 0 || c.Loop.TickRate > 1000 {
		errs = append(errs, fmt.Errorf("loop.tick_rate: must be in 1..1000, got %d", c.Loop.TickRate))
	}
	if c.Room.MaxPlayers <= 0 {
		errs = append(errs, errors.New("room.max_players: must be positive"))
	}
	if c.Room.SyncSplitLimit < SyncSplitMinimum {
		errs = append(errs, fmt.Errorf("room.sync_split_limit: must be at least %d", SyncSplitMinimum))
	}
	if c.Room.HalfExtent <= 0 {
		errs = append(errs, errors.New("room.half_extent: must be positive"))
	}
	return errors.Join(errs...)
}
