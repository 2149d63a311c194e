package termsay

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/termsay/pkg/sink"
	"github.com/arthur-debert/termsay/pkg/style"
	"github.com/arthur-debert/termsay/pkg/ui"
	"github.com/arthur-debert/termsay/pkg/ui/input"
)

// demoPause is how long --slow waits after each message
const demoPause = 300 * time.Millisecond

type demoSection struct {
	name string
	run  func(*ui.UI) error
	// interactive sections only run when asked for by name
	interactive bool
}

var demoSections = []demoSection{
	{name: "levels", run: demoLevels},
	{name: "colors", run: demoColors},
	{name: "icons", run: demoIcons},
	{name: "enumerations", run: demoEnumerations},
	{name: "progress", run: demoProgress},
	{name: "tasks", run: demoTasks},
	{name: "input", run: demoInput, interactive: true},
}

func demoSectionNames() []string {
	names := make([]string, len(demoSections))
	for i, s := range demoSections {
		names[i] = s.name
	}
	return names
}

func newDemoCmd(a *app) *cobra.Command {
	var slow bool

	cmd := &cobra.Command{
		Use:       "demo [section]",
		Short:     MsgDemoShort,
		Long:      MsgDemoLong,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: demoSectionNames(),
		GroupID:   "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			u := a.ui
			if slow {
				u = a.newUI(sink.WithPause(demoPause))
			}

			if len(args) == 1 {
				for _, s := range demoSections {
					if s.name == args[0] {
						return s.run(u)
					}
				}
				return fmt.Errorf("%s", ui.DidYouMean(fmt.Sprintf(MsgErrUnknownSection, args[0]), args[0], demoSectionNames()))
			}

			for _, s := range demoSections {
				if s.interactive {
					continue
				}
				if err := s.run(u); err != nil {
					return err
				}
			}
			return u.Info1(style.Bold, style.Blue, MsgDemoThanks)
		},
	}

	cmd.Flags().BoolVar(&slow, "slow", false, MsgFlagSlow)

	return cmd
}

func demoLevels(u *ui.UI) error {
	steps := []func() error{
		func() error { return u.Info1("Important info") },
		func() error { return u.Info2("Secondary info") },
		func() error { return u.Info3("This is", style.Red, "red") },
		func() error { return u.Info3("this is", style.Bold, "bold") },
		func() error { return u.Debug("shown with --verbose") },
		func() error { return u.Warning("something looks odd") },
		func() error { return u.Error("something went wrong") },
	}
	return runAll(steps)
}

func demoColors(u *ui.UI) error {
	if err := u.Info1(MsgDemoColors); err != nil {
		return err
	}
	for _, name := range style.Names() {
		if err := u.Info3(style.MustLookup(name), name); err != nil {
			return err
		}
	}
	return nil
}

func demoIcons(u *ui.UI) error {
	steps := []func() error{
		func() error { return u.Info1(MsgDemoEllipsis, style.Ellipsis) },
		func() error { return u.Info2(MsgDemoCheck, style.Check) },
		func() error { return u.Info2(MsgDemoCross, style.Cross) },
		func() error { return u.Info2(MsgDemoBlock, style.Block) },
		func() error { return u.Info2(MsgDemoArrow, style.Arrow) },
		func() error { return u.Info3(MsgDemoWindows) },
	}
	return runAll(steps)
}

func demoEnumerations(u *ui.UI) error {
	if err := u.Info1(MsgDemoEnumerations); err != nil {
		return err
	}
	things := []string{"foo", "bar", "baz"}
	if err := enumerate(u, things); err != nil {
		return err
	}

	cfg := u.Config()
	previous := cfg.Settings().Timestamp
	defer cfg.SetTimestamp(previous)

	cfg.SetTimestamp(true)
	if err := u.Info1(MsgDemoTimestamps); err != nil {
		return err
	}
	if err := enumerate(u, things); err != nil {
		return err
	}
	if err := u.Info2(MsgDemoHardToRead); err != nil {
		return err
	}

	cfg.SetTimestamp(false)
	return u.Info1(MsgDemoNoTimestamps)
}

func enumerate(u *ui.UI, things []string) error {
	for i, thing := range things {
		if err := u.InfoCount(i, len(things), thing); err != nil {
			return err
		}
	}
	return nil
}

func demoProgress(u *ui.UI) error {
	const total = 20
	for i := 0; i <= total; i++ {
		if err := u.Progress(i, total, MsgDemoProgress, "Complete"); err != nil {
			return err
		}
	}
	return nil
}

var errDemoFailure = errors.New("not implemented")

func demoTasks(u *ui.UI) error {
	if err := u.Task("this_function_will_succeed", MsgDemoTaskSuccess, func() error {
		return nil
	}); err != nil {
		return err
	}

	err := u.Task("fails_always", MsgDemoTaskFailure, func() error {
		return errDemoFailure
	})
	if !errors.Is(err, errDemoFailure) {
		return err
	}
	return nil
}

func demoInput(u *ui.UI) error {
	err := runInput(u)
	if errors.Is(err, input.ErrInterrupted) {
		return u.Warning("interrupted")
	}
	return err
}

func runInput(u *ui.UI) error {
	if err := u.Info1(MsgDemoInput); err != nil {
		return err
	}

	site, err := u.AskString(MsgDemoWebsite, "https://github.com")
	if err != nil {
		return err
	}
	if err := u.Info3(style.Underline, site); err != nil {
		return err
	}

	fruit, err := u.AskChoice(MsgDemoFruit, []string{"apple", "banana", "cherry", "durian"})
	if err != nil {
		return err
	}

	sugar, err := u.AskYesNo(MsgDemoSugar, false)
	if err != nil {
		return err
	}
	how := MsgDemoWithoutSugar
	if sugar {
		how = MsgDemoWithSugar
	}
	return u.Info2(style.Bold, fruit, style.Reset, how)
}

func runAll(steps []func() error) error {
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
