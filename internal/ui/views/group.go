package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"steamgrip/internal/ui/logic"
)

// BucketRenderer handles rendering of playtime bucket headers
type BucketRenderer struct {
	styles *Styles
}

// NewBucketRenderer creates a new bucket renderer
func NewBucketRenderer(styles *Styles) *BucketRenderer {
	return &BucketRenderer{
		styles: styles,
	}
}

// RenderBucketHeader renders a bucket header
func (b *BucketRenderer) RenderBucketHeader(bucket string, isCollapsed bool, isSelected bool,
	nameQuery string, gameCount int, width int) string {

	// Determine arrow
	arrow := "▼"
	if isCollapsed {
		arrow = "▶"
	}

	// Build bucket name with filter highlighting
	bucketName := bucket
	if nameQuery != "" && strings.Contains(strings.ToLower(bucketName), strings.ToLower(nameQuery)) {
		bucketName = b.highlightMatch(bucketName, nameQuery, b.styles.Highlight, lipgloss.NewStyle())
	}

	// Format the complete line
	line := fmt.Sprintf("%s %s (%d)", arrow, bucketName, gameCount)

	// Apply background color when the cursor is on the header
	if isSelected {
		if width > 0 {
			lineLen := lipgloss.Width(line)
			if lineLen < width {
				line = line + strings.Repeat(" ", width-lineLen)
			}
		}
		return b.styles.SelectionBg.Render(line)
	}

	// The favorites bucket keeps its accent color
	if bucket == logic.BucketFavorites {
		return b.styles.Favorite.Bold(true).Render(line)
	}

	return b.styles.BucketHeader.Render(line)
}

// highlightMatch highlights matching text within a string
func (b *BucketRenderer) highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(query)

	index := strings.Index(lowerText, lowerQuery)
	if index == -1 {
		return normalStyle.Render(text)
	}

	before := text[:index]
	match := text[index : index+len(query)]
	after := text[index+len(query):]

	var result []string
	if before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, highlightStyle.Render(match))
	if after != "" {
		result = append(result, normalStyle.Render(after))
	}

	return strings.Join(result, "")
}
