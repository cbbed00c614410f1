package app

import (
	"encoding/json"
	"flag"
	"os"

	"mad-life/internal/input"
	"mad-life/internal/render"

	"github.com/pkg/errors"
)

// Keys names the key bound to each keyboard action.
type Keys struct {
	Reseed    string `json:"reseed"`
	ToggleRun string `json:"toggle_run"`
	Step      string `json:"step"`
	Clear     string `json:"clear"`
	Quit      string `json:"quit"`
}

// Config represents the startup parameters for the application.
type Config struct {
	File string `json:"-"`

	Title      string `json:"title"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	FPS        int    `json:"fps"`
	CellSize   int    `json:"cell_size"`
	SeedRadius int    `json:"seed_radius"`
	Seed       int64  `json:"seed"`

	// QuitToggles makes every quit request flip the running flag instead of
	// clearing it.
	QuitToggles bool `json:"quit_toggles"`
	ShowHUD     bool `json:"show_hud"`

	LiveColor       string `json:"live_color"`
	BackgroundColor string `json:"background_color"`

	Keys Keys `json:"keys"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Title:           "Game of Life",
		Width:           800,
		Height:          600,
		FPS:             15,
		CellSize:        5,
		SeedRadius:      32,
		ShowHUD:         true,
		LiveColor:       "#ffffff",
		BackgroundColor: "#000000",
		Keys: Keys{
			Reseed:    "r",
			ToggleRun: "s",
			Step:      "n",
			Clear:     "c",
			Quit:      "escape",
		},
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.File, "config", c.File, "JSON config file; explicit flags take precedence")
	fs.StringVar(&c.Title, "title", c.Title, "window title")
	fs.IntVar(&c.Width, "width", c.Width, "surface width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "surface height in pixels")
	fs.IntVar(&c.FPS, "fps", c.FPS, "target frames per second")
	fs.IntVar(&c.CellSize, "cell-size", c.CellSize, "cell edge in pixels")
	fs.IntVar(&c.SeedRadius, "seed-radius", c.SeedRadius, "half-width of the reseeded square, in cells")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 seeds from the clock)")
	fs.BoolVar(&c.QuitToggles, "quit-toggles", c.QuitToggles, "quit requests toggle instead of stopping")
	fs.BoolVar(&c.ShowHUD, "hud", c.ShowHUD, "show the status HUD where supported")
	fs.StringVar(&c.LiveColor, "live-color", c.LiveColor, "live cell color (#rrggbb)")
	fs.StringVar(&c.BackgroundColor, "background-color", c.BackgroundColor, "background color (#rrggbb)")
}

// Parse parses args into c. When -config names a file its values replace the
// defaults and explicitly passed flags are applied on top.
func (c *Config) Parse(fs *flag.FlagSet, args []string) error {
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "[Config.Parse] failed to parse flags")
	}
	if c.File == "" {
		return c.Validate()
	}

	explicit := map[string]string{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = f.Value.String() })

	if err := c.load(c.File); err != nil {
		return err
	}
	for name, value := range explicit {
		if err := fs.Set(name, value); err != nil {
			return errors.Wrapf(err, "[Config.Parse] failed to reapply flag -%s", name)
		}
	}
	return c.Validate()
}

// LoadConfig loads configuration from a JSON file over the defaults.
func LoadConfig(filename string) (*Config, error) {
	c := NewConfig()
	if err := c.load(filename); err != nil {
		return c, err
	}
	return c, c.Validate()
}

func (c *Config) load(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}
	if err = json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}
	c.File = filename
	return nil
}

// Validate rejects configurations the loop cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("invalid surface %dx%d", c.Width, c.Height)
	case c.CellSize <= 0:
		return errors.Errorf("invalid cell size %d", c.CellSize)
	case c.CellSize > c.Width || c.CellSize > c.Height:
		return errors.Errorf("cell size %d does not fit a %dx%d surface", c.CellSize, c.Width, c.Height)
	case c.FPS <= 0:
		return errors.Errorf("invalid fps %d", c.FPS)
	case c.SeedRadius < 0:
		return errors.Errorf("invalid seed radius %d", c.SeedRadius)
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	return c.Keys.validate()
}

// validate rejects two actions sharing one key, which would leave the
// earlier action unreachable. Blank names keep the stock key.
func (k Keys) validate() error {
	def := NewConfig().Keys
	bound := map[input.Key]string{}
	for _, b := range []struct{ action, name, stock string }{
		{"reseed", k.Reseed, def.Reseed},
		{"toggle_run", k.ToggleRun, def.ToggleRun},
		{"step", k.Step, def.Step},
		{"clear", k.Clear, def.Clear},
		{"quit", k.Quit, def.Quit},
	} {
		key := input.KeyName(b.name)
		if key == "" {
			key = input.KeyName(b.stock)
		}
		if other, dup := bound[key]; dup {
			return errors.Errorf("key %q bound to both %s and %s", key, other, b.action)
		}
		bound[key] = b.action
	}
	return nil
}

// Palette resolves the configured colors.
func (c *Config) Palette() (render.Palette, error) {
	live, err := render.ParseColor(c.LiveColor)
	if err != nil {
		return render.Palette{}, errors.Wrap(err, "live_color")
	}
	bg, err := render.ParseColor(c.BackgroundColor)
	if err != nil {
		return render.Palette{}, errors.Wrap(err, "background_color")
	}
	return render.Palette{Live: live, Background: bg}, nil
}

// Keymap builds the key bindings, starting from the stock map.
func (c *Config) Keymap() input.Keymap {
	k := input.DefaultKeymap()
	k.Bind(c.Keys.Reseed, input.ActionReseed)
	k.Bind(c.Keys.ToggleRun, input.ActionToggleRun)
	k.Bind(c.Keys.Step, input.ActionStepOnce)
	k.Bind(c.Keys.Clear, input.ActionClear)
	k.Bind(c.Keys.Quit, input.ActionQuit)
	return k
}
