package pipeline

import (
	"fmt"
	"strings"
	"time"
)

// SKUBuilder produces batch-unique SKUs. The batch stamp is fixed once at
// construction so every SKU of one run shares it, and runs never collide.
type SKUBuilder struct {
	prefix string
	stamp  string
}

// NewSKUBuilder creates a SKUBuilder stamped with the given start time
func NewSKUBuilder(prefix string, start time.Time) *SKUBuilder {
	return &SKUBuilder{
		prefix: prefix,
		stamp:  start.Format("20060102150405"),
	}
}

// Base returns the base SKU for the record at the given batch index
func (b *SKUBuilder) Base(index int) string {
	return fmt.Sprintf("%s-%s-%d", b.prefix, b.stamp, index+1001)
}

// Parent derives the parent-row SKU from a base SKU
func (b *SKUBuilder) Parent(base string) string {
	return base + "-PARENT"
}

// Child derives a child-row SKU from a base SKU and a size label
func (b *SKUBuilder) Child(base, size string) string {
	return base + "-" + strings.ReplaceAll(strings.TrimSpace(size), " ", "")
}
