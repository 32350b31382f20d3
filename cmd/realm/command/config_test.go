package command

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/pixil98/go-testutil"

	"github.com/pixil98/go-realm/internal/storage"
)

func validConfig(t *testing.T) Config {
	t.Helper()
	return Config{
		TickInterval: "5s",
		Storage:      StorageConfig{Backend: storage.BackendFile, Path: t.TempDir()},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := map[string]struct {
		mutate func(c *Config)
		expErr string
	}{
		"defaults are valid": {mutate: func(c *Config) {}},
		"bolt backend":       {mutate: func(c *Config) { c.Storage = StorageConfig{Backend: storage.BackendBolt, Path: "/nonexistent/realm.db"} }},
		"bad tick interval":  {mutate: func(c *Config) { c.TickInterval = "soon" }, expErr: "tick_interval"},
		"tick too short":     {mutate: func(c *Config) { c.TickInterval = "10ms" }, expErr: "at least 1 second"},
		"missing path":       {mutate: func(c *Config) { c.Storage.Path = "" }, expErr: "path is required"},
		"missing directory":  {mutate: func(c *Config) { c.Storage.Path = "/nonexistent/world" }, expErr: "invalid path"},
		"unknown backend":    {mutate: func(c *Config) { c.Storage.Backend = "tape" }, expErr: "unknown backend"},
		"bad nats timeout":   {mutate: func(c *Config) { c.Nats.StartTimeout = "later" }, expErr: "start_timeout"},
		"bad metrics port":   {mutate: func(c *Config) { c.Metrics.Port = 70000 }, expErr: "metrics"},
		"bad hop factor":     {mutate: func(c *Config) { c.Perception.HopFactor = 1.5 }, expErr: "hop_factor"},
		"bad subject prefix": {mutate: func(c *Config) { c.Nats.SubjectPrefix = "realm.>" }, expErr: "subject prefix"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := validConfig(t)
			tt.mutate(&c)

			err := c.Validate()
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_TickInterval(t *testing.T) {
	c := validConfig(t)
	d, err := c.tickInterval()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "tick", d, 5*time.Second)
}

func TestPerceptionConfig_Attenuation(t *testing.T) {
	tests := map[string]struct {
		config PerceptionConfig
		expHop float64
		expHor float64
	}{
		"defaults":       {expHop: 0.85, expHor: 0.1},
		"hop override":   {config: PerceptionConfig{HopFactor: 0.5}, expHop: 0.5, expHor: 0.1},
		"both overrides": {config: PerceptionConfig{HopFactor: 0.7, Horizon: 0.2}, expHop: 0.7, expHor: 0.2},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a := tt.config.attenuation()
			testutil.AssertEqual(t, "hop factor", a.HopFactor, tt.expHop)
			testutil.AssertEqual(t, "horizon", a.Horizon, tt.expHor)
		})
	}
}

func TestStorageConfig_BuildStore(t *testing.T) {
	dir := t.TempDir()

	tests := map[string]struct {
		config StorageConfig
		check  func(t *testing.T, st storage.Storer)
	}{
		"file": {
			config: StorageConfig{Backend: storage.BackendFile, Path: dir},
			check: func(t *testing.T, st storage.Storer) {
				_, ok := st.(*storage.FileStore)
				testutil.AssertEqual(t, "file store", ok, true)
			},
		},
		"bolt": {
			config: StorageConfig{Backend: storage.BackendBolt, Path: filepath.Join(dir, "realm.db")},
			check: func(t *testing.T, st storage.Storer) {
				_, ok := st.(*storage.BoltStore)
				testutil.AssertEqual(t, "bolt store", ok, true)
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			st, err := tt.config.buildStore()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			defer st.Close()
			tt.check(t, st)
		})
	}
}

func TestNatsConfig_BuildPublisher(t *testing.T) {
	tests := map[string]struct {
		prefix string
		exp    string
	}{
		"default": {exp: "realm.character.7"},
		"custom":  {prefix: "world.test", exp: "world.test.character.7"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := NatsConfig{SubjectPrefix: tt.prefix}
			p := c.buildPublisher(nil)
			testutil.AssertEqual(t, "subject", p.Subject(storage.Key{Type: "character", Id: 7}), tt.exp)
		})
	}
}

func TestMetricsConfig_BuildServer(t *testing.T) {
	off := MetricsConfig{}
	testutil.AssertEqual(t, "disabled", off.buildServer(nil) == nil, true)

	on := MetricsConfig{Port: 9100}
	testutil.AssertEqual(t, "enabled", on.buildServer(nil) != nil, true)
}
