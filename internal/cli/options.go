package cli

import (
	"github.com/aretw0/catena/internal/config"
	"github.com/aretw0/catena/pkg/domain"
)

// Flags mirrors the command-line switches.
type Flags struct {
	ShowAll         bool // -A: -vET
	NumberNonBlank  bool // -b
	ShowNonPrintEnd bool // -e: -vE
	ShowEnds        bool // -E
	Number          bool // -n
	SqueezeBlank    bool // -s
	ShowNonPrintTab bool // -t: -vT
	ShowTabs        bool // -T
	Unbuffered      bool // -u, accepted and ignored
	ShowNonPrinting bool // -v

	ConfigPath string
	Debug      bool
	Stats      bool
}

// Config expands the combined switches and lays the result over d.
// Flags only ever turn features on; the literals always come from d.
func (f Flags) Config(d config.Defaults) (domain.Config, error) {
	numbering, err := d.Numbering()
	if err != nil {
		return domain.Config{}, err
	}
	switch {
	case f.NumberNonBlank:
		numbering = domain.NumberNonEmpty
	case f.Number:
		numbering = domain.NumberAll
	}

	cfg := domain.Config{
		Numbering:       numbering,
		SqueezeBlank:    f.SqueezeBlank || d.SqueezeBlank,
		ShowNonPrinting: f.ShowNonPrinting || f.ShowAll || f.ShowNonPrintEnd || f.ShowNonPrintTab || d.ShowNonPrinting,
	}
	if f.ShowEnds || f.ShowAll || f.ShowNonPrintEnd {
		cfg.EndMarker = domain.NewMarker(d.EndMarker)
	}
	if f.ShowTabs || f.ShowAll || f.ShowNonPrintTab {
		cfg.TabMarker = domain.NewMarker(d.TabMarker)
	}
	return cfg, nil
}
