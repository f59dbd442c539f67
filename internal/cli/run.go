package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/Dhanush8/workers-assignment/internal/logx"
	"github.com/Dhanush8/workers-assignment/internal/model"
	"github.com/Dhanush8/workers-assignment/internal/service/assigner"
	"github.com/Dhanush8/workers-assignment/internal/service/excel"
	"github.com/Dhanush8/workers-assignment/internal/service/planner"
	"github.com/Dhanush8/workers-assignment/internal/util"
)

// ErrNoInput 未指定技能表
var ErrNoInput = errors.New("no skill workbook given")

// Options assign 子命令参数
type Options struct {
	File  string
	Sheet string

	// Absent 逗号分隔的缺勤编号；AbsentSet 为 false 时改为交互询问
	Absent    string
	AbsentSet bool

	Format string
	Out    string // 非空时另存结果工作簿
	Open   bool   // 导出后用系统程序打开

	Policy assigner.Policy

	In     io.Reader
	Stdout io.Writer
}

// Run 读取技能表、剔除缺勤员工并输出分配结果
func Run(opts Options) (*planner.Plan, error) {
	if opts.File == "" {
		return nil, ErrNoInput
	}

	parser := excel.NewParser()
	if err := parser.LoadPath(opts.File); err != nil {
		return nil, err
	}
	defer parser.Close()

	roster, err := parser.Parse(excel.ParseOptions{Sheet: opts.Sheet, FileName: opts.File})
	if err != nil {
		return nil, err
	}
	logx.Log.Debug().
		Str("file", opts.File).
		Int("workers", len(roster.WorkerIDs)).
		Int("tasks", len(roster.TaskNames)).
		Msg("roster loaded")

	var absent []string
	if opts.AbsentSet {
		absent = model.ParseIDList(opts.Absent)
	} else {
		absent, err = PromptAbsent(opts.In, opts.Stdout)
		if err != nil {
			return nil, err
		}
	}

	plan, err := planner.New(opts.Policy).Plan(planner.Request{Roster: roster, Absent: absent})
	if err != nil {
		return nil, err
	}

	for _, id := range plan.Unmatched {
		fmt.Fprintf(opts.Stdout, "Warning: absent id %q is not on the roster\n", id)
	}

	if err := Render(opts.Stdout, plan.Report, opts.Format); err != nil {
		return nil, err
	}

	if opts.Out != "" {
		if err := excel.NewExporter().SaveAs(plan.Report, opts.Out); err != nil {
			return nil, fmt.Errorf("export %s: %w", opts.Out, err)
		}
		fmt.Fprintf(opts.Stdout, "Saved assignments to %s\n", opts.Out)
		if opts.Open {
			if err := util.Open(opts.Out); err != nil {
				logx.Log.Warn().Err(err).Str("path", opts.Out).Msg("open export failed")
			}
		}
	}

	return plan, nil
}
