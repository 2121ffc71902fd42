package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/spritegrid/pkg/spritegrid"
)

// hintFlags describe the frame grid of the input sheets.
type hintFlags struct {
	count int
	size  string
}

func (h *hintFlags) register(fs *pflag.FlagSet) {
	fs.IntVar(&h.count, "count", 0, "frames per input sheet (guessed from the sheet size when unset)")
	fs.StringVar(&h.size, "size", "", "frame size as WxH, e.g. 64x64")
}

func (h *hintFlags) hint() (spritegrid.Hint, error) {
	hint := spritegrid.Hint{FrameCount: h.count}
	if h.size != "" {
		g, err := spritegrid.ParseFrameGeometry(h.size)
		if err != nil {
			return spritegrid.Hint{}, err
		}
		hint.Geometry = g
	}
	return hint, nil
}

// selectionFlags describe a frame reduction policy.
type selectionFlags struct {
	mode         string
	skip         int
	symmetric    bool
	directions   int
	perDirection int
	indices      []int
}

func (s *selectionFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&s.mode, "mode", "", "linear, per-rotation, per-direction or explicit (explicit when --indices is set)")
	fs.IntVar(&s.skip, "skip", 2, "keep every skip-th frame or direction group")
	fs.BoolVar(&s.symmetric, "symmetric", false, "pick frames from both ends so loops stay balanced")
	fs.IntVar(&s.directions, "directions", 0, "number of direction groups in the sheet")
	fs.IntVar(&s.perDirection, "frames-per-direction", 0, "frames in each direction group")
	fs.IntSliceVar(&s.indices, "indices", nil, "explicit frame indices to keep, e.g. 0,3,5")
}

func (s *selectionFlags) selection() (spritegrid.Selection, error) {
	name := s.mode
	if name == "" && len(s.indices) > 0 {
		name = spritegrid.SelectExplicit.String()
	}
	mode, err := spritegrid.ParseSelectionMode(name)
	if err != nil {
		return spritegrid.Selection{}, err
	}
	if mode == spritegrid.SelectExplicit && len(s.indices) == 0 {
		return spritegrid.Selection{}, fmt.Errorf("%w: explicit mode needs --indices", spritegrid.ErrInvalidSelection)
	}
	return spritegrid.Selection{
		Mode:               mode,
		Skip:               s.skip,
		Symmetric:          s.symmetric,
		DirectionCount:     s.directions,
		FramesPerDirection: s.perDirection,
		Indices:            s.indices,
	}, nil
}

func printResults(w io.Writer, results ...spritegrid.Result) {
	for _, r := range results {
		for _, out := range r.Outputs {
			fmt.Fprintln(w, out)
		}
	}
}

func (c *cli) mergeCmd() *cobra.Command {
	var (
		output string
		watch  bool
	)
	cmd := &cobra.Command{
		Use:   "merge DIR",
		Short: "Assemble a directory of frame images into a sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := spritegrid.MergeRequest{Dir: args[0], Output: output}
			if watch {
				return c.sg.WatchMerge(cmd.Context(), req, c.cfg.WatchDebounce)
			}
			res, err := c.sg.Merge(cmd.Context(), req)
			if err != nil {
				return err
			}
			printResults(cmd.OutOrStdout(), res)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output sheet (default: DIR.png)")
	cmd.Flags().BoolVar(&watch, "watch", false, "merge again whenever the directory changes")
	cmd.Flags().DurationVar(&c.cfg.WatchDebounce, "debounce", c.cfg.WatchDebounce, "quiet period before a watched merge runs")
	return cmd
}

func (c *cli) componentsCmd() *cobra.Command {
	var (
		prefix  string
		dest    string
		exclude []string
	)
	cmd := &cobra.Command{
		Use:   "components ROOT",
		Short: "Merge the render pass directories under ROOT into one sheet each",
		Long: "Merge the Object, Shadow, WaterReflection and \"Light A Reduced\" directories\n" +
			"under ROOT into PREFIX.png, PREFIX-shadow.png, PREFIX-water-reflection.png\n" +
			"and PREFIX-glow.png. Missing or empty directories are skipped.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			skip := make(map[string]bool, len(exclude))
			for _, name := range exclude {
				skip[name] = true
			}
			var components []spritegrid.Component
			for _, comp := range spritegrid.DefaultComponents {
				if !skip[comp.Name] {
					components = append(components, comp)
				}
			}
			if len(components) == 0 {
				return fmt.Errorf("%w: every component excluded", spritegrid.ErrInvalidConfig)
			}
			res, err := c.sg.MergeComponents(cmd.Context(), spritegrid.ComponentMergeRequest{
				Root:       args[0],
				Prefix:     prefix,
				Dest:       dest,
				Components: components,
			})
			printResults(cmd.OutOrStdout(), res...)
			return err
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", "", "sheet name prefix")
	cmd.Flags().StringVar(&dest, "dest", "", "output directory (default: ROOT)")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "components to leave out: object, shadow, reflection, glow")
	_ = cmd.MarkFlagRequired("prefix")
	return cmd
}

func (c *cli) reduceCmd() *cobra.Command {
	var (
		output string
		hints  hintFlags
		sel    selectionFlags
	)
	cmd := &cobra.Command{
		Use:   "reduce INPUT...",
		Short: "Keep a subset of the frames of each sheet",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hint, err := hints.hint()
			if err != nil {
				return err
			}
			selection, err := sel.selection()
			if err != nil {
				return err
			}
			results, err := c.sg.Reduce(cmd.Context(), spritegrid.ReduceRequest{
				Inputs:    args,
				Output:    output,
				Hint:      hint,
				Selection: selection,
			})
			printResults(cmd.OutOrStdout(), results...)
			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, or directory for directory inputs")
	hints.register(cmd.Flags())
	sel.register(cmd.Flags())
	return cmd
}

func (c *cli) splitCmd() *cobra.Command {
	var (
		output string
		hints  hintFlags
	)
	cmd := &cobra.Command{
		Use:   "split INPUT...",
		Short: "Split sheets larger than the maximum dimension into parts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hint, err := hints.hint()
			if err != nil {
				return err
			}
			results, err := c.sg.Split(cmd.Context(), spritegrid.SplitRequest{Inputs: args, Output: output, Hint: hint})
			printResults(cmd.OutOrStdout(), results...)
			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output base name (default: the input)")
	hints.register(cmd.Flags())
	return cmd
}

func (c *cli) regroupCmd() *cobra.Command {
	var (
		output    string
		groupSize int
		hints     hintFlags
	)
	cmd := &cobra.Command{
		Use:   "regroup INPUT...",
		Short: "Join the parts of a split sheet and lay them out again",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hint, err := hints.hint()
			if err != nil {
				return err
			}
			res, err := c.sg.Regroup(cmd.Context(), spritegrid.RegroupRequest{
				Inputs:    args,
				Output:    output,
				Hint:      hint,
				GroupSize: groupSize,
			})
			if err != nil {
				return err
			}
			printResults(cmd.OutOrStdout(), res)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output base name (default: first input without its part number)")
	cmd.Flags().IntVar(&groupSize, "group-size", 0, "frames per direction group, kept on their own rows")
	cmd.Flags().BoolVar(&c.cfg.DeleteSources, "delete-sources", c.cfg.DeleteSources, "remove the inputs once the outputs are written")
	hints.register(cmd.Flags())
	return cmd
}

func (c *cli) reverseCmd() *cobra.Command {
	var (
		output string
		hints  hintFlags
	)
	cmd := &cobra.Command{
		Use:   "reverse INPUT...",
		Short: "Play each sheet backwards, keeping its first frame",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hint, err := hints.hint()
			if err != nil {
				return err
			}
			results, err := c.sg.Reverse(cmd.Context(), spritegrid.SequenceRequest{Inputs: args, Output: output, Hint: hint})
			printResults(cmd.OutOrStdout(), results...)
			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: INPUT_reversed)")
	hints.register(cmd.Flags())
	return cmd
}

func (c *cli) shiftCmd() *cobra.Command {
	var (
		output string
		hints  hintFlags
	)
	cmd := &cobra.Command{
		Use:   "shift N INPUT...",
		Short: "Rotate the frames of each sheet left by N positions",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("shift amount %q: %w", args[0], err)
			}
			hint, err := hints.hint()
			if err != nil {
				return err
			}
			results, err := c.sg.Shift(cmd.Context(), spritegrid.SequenceRequest{Inputs: args[1:], Output: output, Hint: hint}, n)
			printResults(cmd.OutOrStdout(), results...)
			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: INPUT_shifted_N)")
	hints.register(cmd.Flags())
	return cmd
}

func (c *cli) trimCmd() *cobra.Command {
	var hints hintFlags
	cmd := &cobra.Command{
		Use:   "trim INPUT...",
		Short: "Crop the transparent border shared by every frame, in place",
		Long: "Crop the transparent border shared by every frame of every input.\n" +
			"Pass all parts of a split sheet together so they stay consistent.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hint, err := hints.hint()
			if err != nil {
				return err
			}
			res, err := c.sg.Trim(cmd.Context(), spritegrid.TrimRequest{Inputs: args, Hint: hint})
			if err != nil {
				return err
			}
			if !res.Changed {
				fmt.Fprintf(cmd.OutOrStdout(), "nothing to trim (%s)\n", res.Before)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "trimmed %s -> %s, centre moved by (%.1f, %.1f)\n",
				res.Before, res.After, res.ShiftX, res.ShiftY)
			return nil
		},
	}
	hints.register(cmd.Flags())
	return cmd
}

func (c *cli) planCmd() *cobra.Command {
	var (
		count int
		size  string
	)
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show how a sequence would be laid out, without touching files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			geom, err := spritegrid.ParseFrameGeometry(size)
			if err != nil {
				return err
			}
			plan, err := c.sg.Plan(count, geom)
			if err != nil {
				return err
			}
			canvas := plan.Layout.Canvas(geom)
			fmt.Fprintf(cmd.OutOrStdout(), "files=%d frames_per_file=%d layout=%s canvas=%dx%d\n",
				plan.NumFiles, plan.FramesPerFile, plan.Layout, canvas.X, canvas.Y)
			return nil
		},
	}
	cmd.Flags().IntVar(&count, "count", 0, "number of frames")
	cmd.Flags().StringVar(&size, "size", "", "frame size as WxH")
	_ = cmd.MarkFlagRequired("count")
	_ = cmd.MarkFlagRequired("size")
	return cmd
}
