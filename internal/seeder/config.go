package seeder

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config describes the departments and staff to provision. It is read from
// a YAML file; see seed.example.yaml in the repository root.
type Config struct {
	Departments []DepartmentSpec `yaml:"departments"`
}

// DepartmentSpec declares one department with its staff.
type DepartmentSpec struct {
	Code  string      `yaml:"code"`
	Name  string      `yaml:"name"`
	Staff []StaffSpec `yaml:"staff"`
}

// StaffSpec declares one staff member. Tier and CapacityOverride only apply
// to mentors.
type StaffSpec struct {
	StaffNumber      string `yaml:"staff_number"`
	FullName         string `yaml:"full_name"`
	Email            string `yaml:"email"`
	Role             string `yaml:"role"`
	Tier             string `yaml:"tier"`
	CapacityOverride *int   `yaml:"capacity_override"`
}

// LoadConfig reads the seed declaration from a YAML file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("seeder config: path required")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("seeder config: file %s not found", path)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
	}
	return &cfg, nil
}
