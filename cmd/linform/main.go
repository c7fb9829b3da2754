// Command linform reads a blending instance from JSON, compiles it to
// matrix form and solves it, writing a solution file beside the input.
//
//	linform solve -i instance.json
//	linform show  -i instance.json        # print the LP text, no solve
//
// A solver verdict of infeasible or unbounded is a result, not a failure:
// the solution file records the status and the command exits zero. Only
// broken instances, compilation errors and I/O problems exit nonzero.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
	"github.com/urfave/cli"

	"github.com/maroveq/linform/blend"
	"github.com/maroveq/linform/lp"
	"github.com/maroveq/linform/solver"
)

func main() {
	app := cli.NewApp()
	app.Name = "linform"
	app.Usage = "compile blending instances to matrix form and solve them"
	app.Version = "1.0.0"
	app.Commands = []cli.Command{
		{
			Name:  "solve",
			Usage: "solve an instance and write the solution file",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "input, i", Value: "instance.json", Usage: "path to the instance file"},
				cli.StringFlag{Name: "output, o", Usage: "path for the solution file (default: <input>_solution.json)"},
				cli.Float64Flag{Name: "tol", Usage: "simplex pivot tolerance (0 picks the default)"},
				cli.BoolFlag{Name: "maximize", Usage: "maximize the objective instead of minimizing"},
				cli.StringFlag{Name: "dump-lp", Usage: "also write the model in LP text form to this path"},
				cli.BoolFlag{Name: "quiet, q", Usage: "suppress progress output"},
			},
			Action: solveAction,
		},
		{
			Name:  "show",
			Usage: "print an instance's model in LP text form without solving",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "input, i", Value: "instance.json", Usage: "path to the instance file"},
			},
			Action: showAction,
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func solveAction(c *cli.Context) error {
	initLoggers(c.Bool("quiet"))
	inputF := c.String("input")

	prob, err := readInstance(inputF)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("at %s: %s", inputF, err), 1)
	}
	cm, err := prob.Compile()
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("at %s: %s", inputF, err), 1)
	}
	logInfo.Printf("compiled %q: %d columns, %d rows, %d nonzeros",
		cm.Name, cm.NumCols, cm.NumRows, cm.Nonzeros())

	dir := lp.Minimize
	if c.Bool("maximize") {
		dir = lp.Maximize
	}
	if path := c.String("dump-lp"); path != "" {
		if err := dumpLP(cm, dir, path); err != nil {
			return cli.NewExitError(fmt.Sprintf("at %s: %s", path, err), 1)
		}
		logInfo.Printf("wrote LP model to %s", path)
	}

	s := solver.Simplex{Tol: c.Float64("tol")}
	start := time.Now()
	res, err := s.Solve(cm, dir)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("at %s: %s", inputF, err), 1)
	}

	sol := blend.Solution{
		Name:    cm.Name,
		Status:  res.Status.String(),
		Time:    time.Since(start).String(),
		System:  sysInfo(),
		Comment: prob.Comment,
	}
	if res.Optimal() {
		rep, rerr := solver.NewReport(cm, res)
		if rerr != nil {
			return cli.NewExitError(fmt.Sprintf("at %s: %s", inputF, rerr), 1)
		}
		qs, gerr := rep.Group("x")
		if gerr != nil {
			return cli.NewExitError(fmt.Sprintf("at %s: %s", inputF, gerr), 1)
		}
		sol.Objective = rep.Objective()
		sol.Quantities = qs
		logInfo.Printf("%s objective %g in %s", res.Status, sol.Objective, sol.Time)
		for _, f := range prob.Feeds {
			logInfo.Printf("  x(%s) = %g", f, qs[f])
		}
	} else {
		logErr.Printf("no plan for %q: %s", cm.Name, res.Status)
		if res.Message != "" {
			sol.Comment = strings.TrimSpace(sol.Comment + " " + res.Message)
		}
	}

	outputF := outputPath(inputF, c.String("output"))
	if err := writeSolution(outputF, sol); err != nil {
		return cli.NewExitError(fmt.Sprintf("at %s: %s", outputF, err), 1)
	}
	logInfo.Printf("wrote solution to %s", outputF)
	return nil
}

func showAction(c *cli.Context) error {
	initLoggers(true)
	inputF := c.String("input")

	prob, err := readInstance(inputF)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("at %s: %s", inputF, err), 1)
	}
	cm, err := prob.Compile()
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("at %s: %s", inputF, err), 1)
	}
	fmt.Printf("\\ %d columns, %d rows, %d nonzeros\n", cm.NumCols, cm.NumRows, cm.Nonzeros())
	if err := cm.WriteLP(os.Stdout, lp.Minimize); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	return nil
}

func readInstance(path string) (blend.Problem, error) {
	var p blend.Problem
	data, err := os.ReadFile(path)
	if err != nil {
		return p, err
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return p, err
	}
	return p, nil
}

func writeSolution(path string, sol blend.Solution) error {
	data, err := json.MarshalIndent(sol, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

func dumpLP(cm *lp.Model, dir lp.Direction, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := cm.WriteLP(f, dir); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// outputPath derives the solution path from the instance path unless the
// caller overrides it. The suffix swap never maps a path onto itself, so
// the input file is never overwritten.
func outputPath(input, output string) string {
	if output != "" {
		return output
	}
	return strings.TrimSuffix(input, ".json") + "_solution.json"
}

func sysInfo() blend.SysInfo {
	info := blend.SysInfo{Platform: "unknown", CPU: "unknown"}
	if hostStat, err := host.Info(); err == nil {
		info.Platform = hostStat.Platform
	}
	if cpuStat, err := cpu.Info(); err == nil && len(cpuStat) > 0 {
		info.CPU = cpuStat[0].ModelName
	}
	if vmStat, err := mem.VirtualMemory(); err == nil {
		info.RAMMB = vmStat.Total / 1024 / 1024
	}
	return info
}
