package excel

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/Dhanush8/workers-assignment/internal/model"
	"github.com/Dhanush8/workers-assignment/internal/service/assigner"
)

var (
	ErrNoFile          = errors.New("no file loaded")
	ErrEmptySheet      = errors.New("empty sheet")
	ErrNoTasks         = errors.New("header row has no task columns")
	ErrInvalidCell     = errors.New("invalid skill score cell")
	ErrDuplicateWorker = errors.New("duplicate worker id")
)

// ParseOptions 解析参数
type ParseOptions struct {
	Sheet    string // 为空时自动识别技能表，识别失败读取活动工作表
	FileName string
}

// Parser 技能表解析器
// 约定：第 1 行为表头，A 列为员工编号，B 列起每列一个任务；第 2 行起为技能分
type Parser struct {
	file   *excelize.File
	fileID string
}

// NewParser 创建解析器
func NewParser() *Parser {
	return &Parser{
		fileID: uuid.New().String(),
	}
}

// LoadFile 加载Excel文件
func (p *Parser) LoadFile(reader io.Reader) error {
	file, err := excelize.OpenReader(reader)
	if err != nil {
		return fmt.Errorf("failed to open excel: %w", err)
	}
	p.file = file
	return nil
}

// LoadPath 按路径加载Excel文件
func (p *Parser) LoadPath(path string) error {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("failed to open excel: %w", err)
	}
	p.file = file
	return nil
}

// GetFileID 获取文件ID
func (p *Parser) GetFileID() string {
	return p.fileID
}

// Workbook 返回已加载的工作簿
func (p *Parser) Workbook() *excelize.File {
	return p.file
}

// Close 释放工作簿
func (p *Parser) Close() error {
	if p.file == nil {
		return nil
	}
	return p.file.Close()
}

// GetSheets 获取工作表列表及技能表识别得分
func (p *Parser) GetSheets() ([]model.SheetInfo, error) {
	if p.file == nil {
		return nil, ErrNoFile
	}
	return NewRecognizer().RecognizeWorkbook(p.file), nil
}

// Parse 解析技能表为名册
func (p *Parser) Parse(opts ParseOptions) (*model.Roster, error) {
	if p.file == nil {
		return nil, ErrNoFile
	}
	roster, err := ParseRoster(p.file, opts)
	if err != nil {
		return nil, err
	}
	roster.ID = p.fileID
	return roster, nil
}

// ParseRoster 从工作簿解析名册；ID 由调用方设置
func ParseRoster(wb *excelize.File, opts ParseOptions) (*model.Roster, error) {
	sheet := strings.TrimSpace(opts.Sheet)
	if sheet == "" {
		sheet = NewRecognizer().DetectSkillSheet(wb)
	}
	if sheet == "" {
		sheet = wb.GetSheetName(wb.GetActiveSheetIndex())
	}

	rows, err := wb.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptySheet, sheet)
	}

	header := rows[0]
	taskNames := make([]string, 0, len(header))
	for i := 1; i < len(header); i++ {
		name := strings.TrimSpace(header[i])
		if name == "" {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			name = cell
		}
		taskNames = append(taskNames, name)
	}
	if len(taskNames) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoTasks, sheet)
	}

	roster := &model.Roster{
		FileName:   opts.FileName,
		Sheet:      sheet,
		WorkerIDs:  make([]string, 0, len(rows)-1),
		TaskNames:  taskNames,
		Matrix:     make(model.SkillMatrix, 0, len(rows)-1),
		ImportedAt: time.Now(),
	}

	seen := make(map[string]int)
	for i, row := range rows[1:] {
		rowNum := i + 2
		if isBlankRow(row) {
			continue // 跳过空行
		}

		workerID := ""
		if len(row) > 0 {
			workerID = strings.TrimSpace(row[0])
		}
		if workerID == "" {
			return nil, fmt.Errorf("%w: A%d: empty worker id", ErrInvalidCell, rowNum)
		}
		if prev, ok := seen[workerID]; ok {
			return nil, fmt.Errorf("%w: %q on rows %d and %d", ErrDuplicateWorker, workerID, prev, rowNum)
		}
		seen[workerID] = rowNum

		scores, err := parseScores(row, len(taskNames), rowNum)
		if err != nil {
			return nil, err
		}
		roster.WorkerIDs = append(roster.WorkerIDs, workerID)
		roster.Matrix = append(roster.Matrix, scores)
	}

	return roster, nil
}

// parseScores 解析一行技能分，空单元格记为 0
func parseScores(row []string, tasks int, rowNum int) ([]float64, error) {
	scores := make([]float64, tasks)
	for j := 0; j < tasks; j++ {
		col := j + 1
		if col >= len(row) {
			break
		}
		val := strings.TrimSpace(row[col])
		if val == "" {
			continue
		}
		// 移除千分位分隔符
		val = strings.ReplaceAll(val, ",", "")
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowNum)
			return nil, fmt.Errorf("%w: %s=%q", ErrInvalidCell, cell, row[col])
		}
		if math.IsNaN(f) || math.IsInf(f, 0) || f > assigner.MaxScore {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowNum)
			return nil, fmt.Errorf("%w: %s=%q out of range", ErrInvalidCell, cell, row[col])
		}
		if f < 0 {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowNum)
			return nil, fmt.Errorf("%w: %s is negative (%v)", ErrInvalidCell, cell, f)
		}
		scores[j] = f
	}
	// 表头之外的列不允许有数据
	for col := tasks + 1; col < len(row); col++ {
		if strings.TrimSpace(row[col]) != "" {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowNum)
			return nil, fmt.Errorf("%w: %s: value beyond last task column", ErrInvalidCell, cell)
		}
	}
	return scores, nil
}

func isBlankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
