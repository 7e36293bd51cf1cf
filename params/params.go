package params

import (
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"gitlab.com/puppetk/puppetk"
)

// Type of a declared parameter
type Type int8

// revive:exported
const (
	String Type = iota + 1
	Boolean
)

var typeMap = map[Type]string{
	String:  "string",
	Boolean: "boolean",
}

func (t Type) String() string {
	if s, ok := typeMap[t]; ok {
		return s
	}
	return ""
}

// Declaration of a parameter
type Declaration struct {
	Name    string
	Type    Type
	Default string
}

// Codec reads parameters from the current URL of a window. Declarations are
// kept until Reset is called.
type Codec struct {
	declared map[string]*Declaration
	urlFn    func() string
}

// New codec reading URLs from win, win may be nil if SetURLSource is used.
func New(win puppetk.Window) *Codec {
	c := &Codec{declared: make(map[string]*Declaration)}
	if win != nil {
		c.urlFn = win.CurrentURL
	}
	return c
}

// SetURLSource overrides where the current URL is read from
func (c *Codec) SetURLSource(fn func() string) {
	c.urlFn = fn
}

// URL currently being decoded
func (c *Codec) URL() string {
	if c.urlFn == nil {
		return ""
	}
	return c.urlFn()
}

// DeclareString parameter name with a default used when it is absent
func (c *Codec) DeclareString(name, defaultValue string) {
	c.declare(&Declaration{Name: name, Type: String, Default: defaultValue})
}

// DeclareBoolean parameter name, presence alone means true
func (c *Codec) DeclareBoolean(name string) {
	c.declare(&Declaration{Name: name, Type: Boolean})
}

// Declare every parameter in cfg
func (c *Codec) Declare(cfg puppetk.ParamConfig) {
	for name, def := range cfg.Strings {
		c.DeclareString(name, def)
	}
	for _, name := range cfg.Booleans {
		c.DeclareBoolean(name)
	}
}

func (c *Codec) declare(d *Declaration) {
	if exist, ok := c.declared[d.Name]; ok && exist.Type != d.Type {
		log.Warn().Str("param", d.Name).Str("was", exist.Type.String()).Str("now", d.Type.String()).Msg("parameter redeclared")
	}
	c.declared[d.Name] = d
}

// Declared returns the declaration of name
func (c *Codec) Declared(name string) (*Declaration, bool) {
	d, ok := c.declared[name]
	return d, ok
}

// Declarations sorted by name
func (c *Codec) Declarations() []*Declaration {
	decls := make([]*Declaration, 0, len(c.declared))
	for _, d := range c.declared {
		decls = append(decls, d)
	}
	sort.Slice(decls, func(i, j int) bool { return decls[i].Name < decls[j].Name })
	return decls
}

// Reset removes all declarations
func (c *Codec) Reset() {
	c.declared = make(map[string]*Declaration)
}

// GetAll parameters present in the current URL, declared or not.
func (c *Codec) GetAll() map[string]string {
	return ParseQuery(c.URL())
}

// GetUndeclared parameters present in the current URL
func (c *Codec) GetUndeclared() map[string]string {
	all := c.GetAll()
	for name := range all {
		if _, ok := c.declared[name]; ok {
			delete(all, name)
		}
	}
	return all
}

// String value of name, or its declared default when absent
func (c *Codec) String(name string) string {
	if v, ok := c.GetAll()[name]; ok {
		return v
	}
	if d, ok := c.declared[name]; ok {
		return d.Default
	}
	return ""
}

// Bool is true when name is present without a value, or with any value
// other than false or 0.
func (c *Codec) Bool(name string) bool {
	v, ok := c.GetAll()[name]
	if !ok {
		return false
	}
	switch strings.ToLower(v) {
	case "false", "0":
		return false
	}
	return true
}
