// Package app is the root bubbletea model: one spinner column per gear
// value, bound to a gear.State.
package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/llehouerou/ritzel/internal/config"
	"github.com/llehouerou/ritzel/internal/gear"
	"github.com/llehouerou/ritzel/internal/keymap"
	"github.com/llehouerou/ritzel/internal/ui/helpbindings"
	"github.com/llehouerou/ritzel/internal/ui/layout"
	"github.com/llehouerou/ritzel/internal/ui/spinner"
)

// pageSteps is the number of steps taken by pgup/pgdown.
const pageSteps = 10

// Model is the root application model containing all state.
type Model struct {
	Gear     gear.State
	Left     spinner.Model[int]
	Ratio    spinner.Model[float64]
	Right    spinner.Model[int]
	Focus    gear.Slot
	Keys     *keymap.Resolver
	Help     helpbindings.Model
	ShowHelp bool
	ErrorMsg string
	Width    int
	Height   int

	log zerolog.Logger
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// New creates the application model from configuration.
func New(cfg *config.Config, log zerolog.Logger) (Model, error) {
	state, err := cfg.InitialState()
	if err != nil {
		return Model{}, err
	}

	teeth := cfg.GetTeethConfig()
	ratio := cfg.GetRatioConfig()
	dragRows := cfg.GetInputConfig().DragRows

	teethCfg := spinner.Config[int]{
		Step:      teeth.Step,
		Min:       teeth.Min,
		Max:       teeth.Max,
		Unbounded: teeth.Max == 0,
		DragRows:  dragRows,
	}
	ratioCfg := spinner.Config[float64]{
		Step:     ratio.Step,
		Min:      ratio.Min,
		Max:      ratio.Max,
		DragRows: dragRows,
	}
	ratioCodec := spinner.FloatCodec{Precision: *ratio.Precision}

	state, err = fitState(state, teethCfg, ratioCfg, ratioCodec)
	if err != nil {
		return Model{}, err
	}

	m := Model{
		Gear:  state,
		Left:  spinner.New(gear.LeftTeeth.String(), teethCfg, spinner.IntCodec{}, state.LeftTeeth()),
		Ratio: spinner.New(gear.Ratio.String(), ratioCfg, ratioCodec, state.GivenRatio()),
		Right: spinner.New(gear.RightTeeth.String(), teethCfg, spinner.IntCodec{}, state.RightTeeth()),
		Keys:  keymap.NewResolver(keymap.Bindings),
		Help:  helpbindings.New(),
		log:   log,
	}

	for _, slot := range gear.Slots {
		m.field(slot).SetBounds(layout.SpinnerRect(int(slot)))
	}
	m.Help.SetContexts([]string{keymap.ContextGlobal, keymap.ContextField})

	// Start on the first editable column.
	m.Focus = gear.LeftTeeth
	if state.Locked() == gear.LeftTeeth {
		m.Focus = gear.Ratio
	}
	m.field(m.Focus).SetFocused(true)
	m.syncFields()

	log.Debug().
		Int("left", state.LeftTeeth()).
		Int("right", state.RightTeeth()).
		Float64("given", state.GivenRatio()).
		Stringer("locked", state.Locked()).
		Msg("calculator ready")

	return m, nil
}

// fitState brings the configured start values inside the spinner bounds
// and onto the ratio grid, so every column starts on a reachable value.
func fitState(s gear.State, teeth spinner.Config[int], ratio spinner.Config[float64], codec spinner.FloatCodec) (gear.State, error) {
	fitTeeth := func(n int) int {
		n = max(n, teeth.Min)
		if !teeth.Unbounded {
			n = min(n, teeth.Max)
		}
		return n
	}
	given := min(max(codec.Normalize(s.GivenRatio()), ratio.Min), ratio.Max)
	return gear.New(fitTeeth(s.LeftTeeth()), fitTeeth(s.RightTeeth()), given, s.Locked())
}
