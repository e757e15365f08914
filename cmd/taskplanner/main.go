package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ibudubuduu/Smart-Task-Planner/internal/audit"
	"github.com/ibudubuduu/Smart-Task-Planner/internal/config"
	"github.com/ibudubuduu/Smart-Task-Planner/internal/llm"
	"github.com/ibudubuduu/Smart-Task-Planner/internal/logging"
	"github.com/ibudubuduu/Smart-Task-Planner/internal/notify"
	"github.com/ibudubuduu/Smart-Task-Planner/internal/server"
	"github.com/ibudubuduu/Smart-Task-Planner/internal/store"
	"github.com/ibudubuduu/Smart-Task-Planner/internal/workspace"
)

const appName = "taskplanner"

func main() {
	flag.String("data", "", "Path to the data directory")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s: goal breakdown and task planning\n\n", appName)
		fmt.Fprintf(os.Stderr, "Usage:\n  %s [command] [flags]\n\n", appName)
		fmt.Fprintln(os.Stderr, "Commands:")
		fmt.Fprintln(os.Stderr, "  serve   Run the HTTP planning service")
		fmt.Fprintln(os.Stderr, "  plan    Generate and save a plan for a goal")
		fmt.Fprintln(os.Stderr, "  show    Show a saved plan by id")
		fmt.Fprintln(os.Stderr, "  demo    Run sample goals through the planner")
		fmt.Fprintln(os.Stderr, "  help    Show this help")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flag.PrintDefaults()
	}

	dataPath, remaining, err := extractDataFlag(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	args := remaining
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		flag.Usage()
		return
	}

	switch args[0] {
	case "serve":
		if err := runServe(args[1:], dataPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	case "plan":
		if err := runPlan(args[1:], dataPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	case "show":
		if err := runShow(args[1:], dataPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	case "demo":
		if err := runDemo(args[1:]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, args[0])
		flag.Usage()
		os.Exit(1)
	}
}

func extractDataFlag(args []string) (string, []string, error) {
	var dataPath string
	remaining := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--data" {
			if i+1 >= len(args) {
				return "", nil, fmt.Errorf("--data requires a value")
			}
			dataPath = args[i+1]
			i++
			continue
		}
		if strings.HasPrefix(arg, "--data=") {
			dataPath = strings.TrimPrefix(arg, "--data=")
			continue
		}
		remaining = append(remaining, arg)
	}
	return dataPath, remaining, nil
}

// resolveConfig layers the data dir onto the loaded configuration. The
// data dir wins over config defaults for storage paths but never over an
// explicit config file or environment value.
func resolveConfig(dataPath, configPath string) (config.Config, *workspace.Workspace, error) {
	if dataPath == "" {
		dataPath = "."
	}
	ws, err := workspace.Resolve(dataPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	if err := ws.EnsureDirs(); err != nil {
		return config.Config{}, nil, err
	}

	if configPath == "" && ws.HasConfig() {
		configPath = ws.ConfigPath
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	if cfg.DBPath == config.DefaultDBPath {
		cfg.DBPath = ws.DBPath
	}
	if cfg.AuditDBPath == config.DefaultAuditDBPath {
		cfg.AuditDBPath = ws.AuditDBPath
	}
	return cfg, ws, nil
}

func runServe(args []string, dataPath string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	addr := fs.String("addr", "", "Listen address (default from config)")
	configPath := fs.String("config", "", "Path to config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, _, err := resolveConfig(dataPath, *configPath)
	if err != nil {
		return err
	}
	if *addr != "" {
		cfg.ListenAddr = *addr
	}

	log := logging.New("server")
	auditLog := audit.NewLogger(cfg.AuditDBPath)

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := context.Background()
	planner := llm.NewPlanner(ctx, cfg, log, auditLog)
	log.Info("planner_ready", map[string]any{"llm_method": planner.Method()})

	srv := server.New(cfg.ListenAddr, planner, st, log)
	return srv.Run(ctx)
}

func runPlan(args []string, dataPath string) error {
	fs := flag.NewFlagSet("plan", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	goal := fs.String("goal", "", "Goal to plan for")
	configPath := fs.String("config", "", "Path to config file")
	asJSON := fs.Bool("json", false, "Print the saved record as JSON")
	noSave := fs.Bool("no-save", false, "Skip persisting the plan")
	notifyFlag := fs.Bool("notify", false, "Send a desktop notification when done")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*goal) == "" {
		return fmt.Errorf("--goal is required")
	}

	cfg, _, err := resolveConfig(dataPath, *configPath)
	if err != nil {
		return err
	}

	log := logging.New("cli")
	auditLog := audit.NewLogger(cfg.AuditDBPath)

	ctx := context.Background()
	planner := llm.NewPlanner(ctx, cfg, log, auditLog)

	p, method, err := planner.GeneratePlan(ctx, *goal)
	if err != nil {
		return err
	}

	var id int64
	if !*noSave {
		st, err := store.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer st.Close()
		id, err = st.Save(ctx, p.Goal, p, method)
		if err != nil {
			return err
		}
		payload := map[string]any{"plan_id": id, "goal": p.Goal, "llm_method": method}
		if err := auditLog.LogEvent("cli", audit.EventPlanSaved, payload); err != nil {
			fmt.Fprintln(os.Stderr, "audit log failed:", err)
		}
	}

	if *asJSON {
		rec := store.Record{
			ID:        id,
			Goal:      p.Goal,
			Plan:      p,
			LLMMethod: method,
			CreatedAt: time.Now().UTC(),
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rec); err != nil {
			return err
		}
	} else {
		printPlan(p, id, method)
	}

	if *notifyFlag && cfg.Notifications {
		title, message := notify.FormatPlanReady(p.Goal, len(p.Tasks), method)
		n := &notify.Notifier{Enabled: true}
		if err := n.Send(title, message); err != nil {
			fmt.Fprintln(os.Stderr, "notification failed:", err)
		}
	}
	return nil
}

func runShow(args []string, dataPath string) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	configPath := fs.String("config", "", "Path to config file")
	asJSON := fs.Bool("json", false, "Print the record as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("show: exactly one plan id is required")
	}
	id, err := strconv.ParseInt(fs.Arg(0), 10, 64)
	if err != nil {
		return fmt.Errorf("show: invalid plan id %q", fs.Arg(0))
	}

	cfg, _, err := resolveConfig(dataPath, *configPath)
	if err != nil {
		return err
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := context.Background()
	rec, err := st.Get(ctx, id)
	if err != nil {
		if store.IsNotFound(err) {
			return fmt.Errorf("plan %d not found", id)
		}
		return err
	}

	auditLog := audit.NewLogger(cfg.AuditDBPath)
	payload := map[string]any{"plan_id": rec.ID, "goal": rec.Goal}
	if err := auditLog.LogEvent("cli", audit.EventPlanFetched, payload); err != nil {
		fmt.Fprintln(os.Stderr, "audit log failed:", err)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	}
	printPlan(rec.Plan, rec.ID, rec.LLMMethod)
	return nil
}
