package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/llehouerou/ritzel/internal/errmsg"
	"github.com/llehouerou/ritzel/internal/gear"
)

// ErrLockedEdit is returned when solve is asked to edit the locked value.
var ErrLockedEdit = errors.New("cannot edit the locked value")

type solveOptions struct {
	edit  string
	lock  string
	left  int
	right int
	ratio float64
}

func newSolveCommand(e *env) *cobra.Command {
	opts := &solveOptions{}

	cmd := &cobra.Command{
		Use:   "solve --edit <left|ratio|right> [--left N] [--right N] [--ratio R] [--lock <slot>]",
		Short: "Recompute the free value without starting the UI",
		Long: `solve starts from the configured defaults, applies the given values,
then recomputes the value that is neither edited nor locked.`,
		Example: `  ritzel solve --edit left --left 20
  ritzel solve --edit ratio --ratio 2 --lock right`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := solve(e, opts, cmd)
			if err != nil {
				return err
			}
			e.log.Debug().
				Str("edited", opts.edit).
				Int("left", s.LeftTeeth()).
				Int("right", s.RightTeeth()).
				Float64("given", s.GivenRatio()).
				Msg("solved")
			return printState(cmd.OutOrStdout(), &s)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.edit, "edit", "", "value being edited: left, ratio or right")
	flags.StringVar(&opts.lock, "lock", "", "locked value (default from config)")
	flags.IntVar(&opts.left, "left", 0, "left teeth")
	flags.IntVar(&opts.right, "right", 0, "right teeth")
	flags.Float64Var(&opts.ratio, "ratio", 0, "given ratio")
	_ = cmd.MarkFlagRequired("edit")

	return cmd
}

// solve builds the starting state from config and flags, then recomputes
// from the edited slot.
func solve(e *env, opts *solveOptions, cmd *cobra.Command) (gear.State, error) {
	edited, err := gear.ParseSlot(opts.edit)
	if err != nil {
		return gear.State{}, fmt.Errorf("--edit: %w", err)
	}

	start, err := e.cfg.InitialState()
	if err != nil {
		return gear.State{}, &OpError{Op: errmsg.OpLoadConfig, Err: err}
	}

	locked := start.Locked()
	if cmd.Flags().Changed("lock") {
		if locked, err = gear.ParseSlot(opts.lock); err != nil {
			return gear.State{}, fmt.Errorf("--lock: %w", err)
		}
	}
	if edited == locked {
		return gear.State{}, fmt.Errorf("%w: --edit %s with --lock %s", ErrLockedEdit, edited, locked)
	}

	left, right, ratio := start.LeftTeeth(), start.RightTeeth(), start.GivenRatio()
	if cmd.Flags().Changed("left") {
		left = opts.left
	}
	if cmd.Flags().Changed("right") {
		right = opts.right
	}
	if cmd.Flags().Changed("ratio") {
		ratio = opts.ratio
	}

	s, err := gear.New(left, right, ratio, locked)
	if err != nil {
		return gear.State{}, err
	}
	if err := s.Edit(edited, s.Value(edited)); err != nil {
		return gear.State{}, err
	}
	return s, nil
}

func printState(w io.Writer, s *gear.State) error {
	_, err := fmt.Fprintf(w,
		"left teeth:   %s\nright teeth:  %s\ngiven ratio:  %s\nactual ratio: %s\ndivergence:   %+.2f%%\nlocked:       %s\n",
		humanize.Comma(int64(s.LeftTeeth())),
		humanize.Comma(int64(s.RightTeeth())),
		strconv.FormatFloat(s.GivenRatio(), 'f', -1, 64),
		strconv.FormatFloat(s.ActualRatio(), 'f', 3, 64),
		s.Divergence()*100,
		s.Locked(),
	)
	return err
}
