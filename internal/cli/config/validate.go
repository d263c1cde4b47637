package config

import "fmt"

// Validate checks the configuration for values no command could work with.
func (c *Config) Validate() error {
	if c.Columns < 1 {
		return fmt.Errorf("columns must be at least 1, got %d", c.Columns)
	}
	if c.ParagraphSpacing < 0 {
		return fmt.Errorf("paragraph_spacing must not be negative, got %d", c.ParagraphSpacing)
	}
	for i, src := range c.Sources {
		if src == nil {
			// Part break.
			continue
		}
		if src.Path == "" {
			return fmt.Errorf("sources[%d]: path must not be empty", i)
		}
	}
	return nil
}
