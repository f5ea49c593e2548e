package runnutri

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/saadjs/runnutri/internal/model"
	"github.com/saadjs/runnutri/internal/service"
	"github.com/spf13/cobra"
)

const sessionHelp = `Commands:
  weight <kg>                            set body weight
  training <easy|moderate|hard>          set training category
  meal <slot>                            select the active meal slot
  merge <on|off>                         fold post-workout targets into dinner
  add <banana|egg|rice|chicken> [qty]    log a catalog food to the active meal
  manual <carb> <protein> [name...]      log a custom food
  rm <id>                                remove a logged entry
  show                                   show targets, intake and evaluation
  log                                    list every logged entry
  help                                   show this help
  quit                                   end the session`

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Run an interactive planning session reading commands from stdin",
	Long:  "Run an interactive planning session. Nothing is saved; the log is discarded when the session ends.\n\n" + sessionHelp,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		sh := &sessionShell{session: s, out: cmd.OutOrStdout()}
		return sh.run(cmd.InOrStdin())
	},
}

type sessionShell struct {
	session *service.Session
	out     io.Writer
}

func (sh *sessionShell) run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		quit, err := sh.exec(line)
		if err != nil {
			fmt.Fprintf(sh.out, "error: %v\n", err)
			continue
		}
		if quit {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read session input: %w", err)
	}
	return nil
}

func (sh *sessionShell) exec(line string) (bool, error) {
	fields := strings.Fields(line)
	name, args := strings.ToLower(fields[0]), fields[1:]
	switch name {
	case "quit", "exit":
		return true, nil
	case "help":
		fmt.Fprintln(sh.out, sessionHelp)
		return false, nil
	case "weight":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: weight <kg>")
		}
		w, err := parseFloatArg("weight", args[0])
		if err != nil {
			return false, err
		}
		if err := sh.session.SetWeight(w); err != nil {
			return false, err
		}
		return false, sh.show()
	case "training":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: training <easy|moderate|hard>")
		}
		c, err := service.ParseTrainingCategory(args[0])
		if err != nil {
			return false, err
		}
		if err := sh.session.SetTraining(c); err != nil {
			return false, err
		}
		return false, sh.show()
	case "meal":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: meal <slot>")
		}
		m, err := service.ParseMealSlot(args[0])
		if err != nil {
			return false, err
		}
		if err := sh.session.SelectMeal(m); err != nil {
			return false, err
		}
		return false, sh.show()
	case "merge":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: merge <on|off>")
		}
		on, err := parseOnOff(args[0])
		if err != nil {
			return false, err
		}
		sh.session.SetDinnerRecovery(on)
		return false, sh.show()
	case "add":
		return false, sh.add(args)
	case "manual":
		if len(args) < 2 {
			return false, fmt.Errorf("usage: manual <carb> <protein> [name...]")
		}
		return false, sh.logCandidate(service.Manual(strings.Join(args[2:], " "), args[0], args[1]))
	case "rm", "remove":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: rm <id>")
		}
		id, err := parseInt64Arg("entry id", args[0])
		if err != nil {
			return false, err
		}
		if sh.session.Remove(id) {
			fmt.Fprintf(sh.out, "Removed entry %d\n", id)
		} else {
			fmt.Fprintf(sh.out, "No entry %d\n", id)
		}
		return false, nil
	case "show":
		return false, sh.show()
	case "log":
		sh.printEntries(sh.session.Entries())
		return false, nil
	default:
		return false, fmt.Errorf("unknown command %q (try help)", name)
	}
}

func (sh *sessionShell) add(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("usage: add <banana|egg|rice|chicken> [qty]")
	}
	food, err := service.LookupFood(args[0])
	if err != nil {
		return err
	}
	qty := food.Default
	if len(args) == 2 {
		if qty, err = parseFloatArg(food.ID+" quantity", args[1]); err != nil {
			return err
		}
	}
	c, err := service.FromCatalog(food.ID, qty)
	if err != nil {
		return err
	}
	return sh.logCandidate(c)
}

func (sh *sessionShell) logCandidate(c service.Candidate) error {
	e, err := sh.session.Log(c)
	if err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "Added entry %d: %s (C %sg, P %sg) to %s\n", e.ID, e.Name, formatGrams(e.CarbG), formatGrams(e.ProteinG), e.Meal)
	return nil
}

func (sh *sessionShell) show() error {
	v, err := sh.session.View()
	if err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "Weight: %s kg | Training: %s (%s) | Meal: %s | Dinner recovery: %s\n",
		formatGrams(v.WeightKg), v.Training.Label, v.Training.Category, v.Meal, onOff(v.DinnerRecovery))
	fmt.Fprintf(sh.out, "Day: C %s/%dg (%d%%) | P %s/%dg (%d%%) | On track: %s\n",
		formatGrams(v.DailyIntake.CarbG), v.Daily.CarbG, v.Progress.CarbPct,
		formatGrams(v.DailyIntake.ProteinG), v.Daily.ProteinG, v.Progress.ProteinPct,
		yesNo(v.OnTrack))
	fmt.Fprintf(sh.out, "Meal %s: C %s/%dg %s | P %s/%dg %s\n", v.Meal,
		formatGrams(v.MealIntake.CarbG), v.MealTarget.CarbG, v.MealEvaluation.Carb.Label,
		formatGrams(v.MealIntake.ProteinG), v.MealTarget.ProteinG, v.MealEvaluation.Protein.Label)
	sh.printEntries(v.MealEntries)
	return nil
}

func (sh *sessionShell) printEntries(entries []model.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(sh.out, "No entries")
		return
	}
	fmt.Fprintln(sh.out, "ID\tTIME\tMEAL\tNAME\tC\tP")
	for _, e := range entries {
		fmt.Fprintf(sh.out, "%d\t%s\t%s\t%s\t%s\t%s\n", e.ID, e.LoggedAt.Format("15:04"), e.Meal, e.Name, formatGrams(e.CarbG), formatGrams(e.ProteinG))
	}
}

func parseOnOff(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid toggle %q (expected on or off)", value)
	}
	return b, nil
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func init() {
	rootCmd.AddCommand(sessionCmd)
}
