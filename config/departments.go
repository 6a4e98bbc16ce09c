package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed presets/preset.yaml
var defaultPreset []byte

// ErrUnknownDepartment запрошен код, которого нет в пресете
var ErrUnknownDepartment = errors.New("unknown department")

// DepartmentSpec откуда брать расписание специальности
type DepartmentSpec struct {
	Link string `yaml:"link" json:"link"` //Сегмент пути страницы факультета
	Row  uint   `yaml:"row" json:"row"`   //Смещение подгруппы внутри блока пары
	// Layout версия разметки таблицы, 0 - текущая
	Layout int `yaml:"layout,omitempty" json:"layout,omitempty"`
}

// Departments пресет: код -> DepartmentSpec. Загружается один раз и дальше не меняется.
type Departments map[string]DepartmentSpec

// UnknownDepartmentError содержит все допустимые коды
type UnknownDepartmentError struct {
	Code  string
	Known []string
}

func (e *UnknownDepartmentError) Error() string {
	return fmt.Sprintf("found `%s` expected one of: [%s]", e.Code, strings.Join(e.Known, ", "))
}

func (e *UnknownDepartmentError) Unwrap() error {
	return ErrUnknownDepartment
}

// LoadDepartments прочитать пресет по пути, если путь пустой - встроенный
func LoadDepartments(path string) (Departments, error) {
	data := defaultPreset
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("failed to read presets: %w", err)
		}
	}
	return ParseDepartments(data)
}

// ParseDepartments коды приводятся к NormalizeCode, совпавшие после этого коды - ошибка
func ParseDepartments(data []byte) (Departments, error) {
	var raw map[string]DepartmentSpec
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse presets: %w", err)
	}

	deps := make(Departments, len(raw))
	seen := make(map[string]string, len(raw))
	for code, spec := range raw {
		if strings.TrimSpace(spec.Link) == "" {
			return nil, fmt.Errorf("department %q: link can not be empty", code)
		}
		if strings.Contains(spec.Link, "/") {
			return nil, fmt.Errorf("department %q: link %q must be a single path segment", code, spec.Link)
		}
		key := NormalizeCode(code)
		if key == "" {
			return nil, fmt.Errorf("department code can not be empty")
		}
		if other, ok := seen[key]; ok {
			return nil, fmt.Errorf("departments %q and %q are the same code %q", other, code, key)
		}
		seen[key] = code
		deps[key] = spec
	}
	return deps, nil
}

// NormalizeCode код специальности без учёта регистра и пробелов по краям
func NormalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// Codes все коды по алфавиту
func (d Departments) Codes() []string {
	codes := make([]string, 0, len(d))
	for code := range d {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Lookup найти специальность по коду (без учёта регистра)
func (d Departments) Lookup(code string) (DepartmentSpec, error) {
	if spec, ok := d[NormalizeCode(code)]; ok {
		return spec, nil
	}
	return DepartmentSpec{}, &UnknownDepartmentError{Code: code, Known: d.Codes()}
}
