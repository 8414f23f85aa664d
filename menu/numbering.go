package menu

import "strconv"

// Reserved display strings. Terminals may style these but not change them.
const (
	// BackLabel is the label of the synthetic collapsed-mode back entry.
	BackLabel = "Back"
	// ExitLabel is the label of the automatically appended exit option.
	ExitLabel = "Exit"
	// Placeholder is shown for a folder with nothing in it.
	Placeholder = "<empty>"
)

// expandedLines flattens the whole tree into render records with composite
// dot-joined indices. Positions count selectable siblings only: separators
// never consume a number, and an empty folder renders as a single
// un-numbered line. A non-empty folder's index prefixes its children's, so
// the second child of the first folder is "1.2".
func expandedLines(root *Folder) []Line {
	var lines []Line
	var walk func(items []Item, prefix string, depth int)
	walk = func(items []Item, prefix string, depth int) {
		counter := 0
		for _, it := range items {
			switch node := it.(type) {
			case *Separator:
				lines = append(lines, Line{Kind: LineSeparator, Depth: depth})
			case *Folder:
				if node.IsEmpty() {
					lines = append(lines, Line{Kind: LineFolder, Label: node.label, Item: node, Depth: depth})
					continue
				}
				counter++
				index := joinIndex(prefix, counter)
				lines = append(lines, Line{Kind: LineFolder, Index: index, Label: node.label, Item: node, Depth: depth})
				walk(node.children, index, depth+1)
			case *Option:
				counter++
				lines = append(lines, Line{Kind: LineOption, Index: joinIndex(prefix, counter), Label: node.label, Item: node, Depth: depth})
			}
		}
	}
	walk(root.children, "", 0)
	if len(root.children) == 0 {
		lines = append(lines, Line{Kind: LinePlaceholder, Label: Placeholder})
	}
	return lines
}

// collapsedLines renders the direct children of the folder in view,
// numbered 1..k with separators skipped and un-numbered. Empty folders keep
// their number here, since in collapsed mode they can still be entered.
// Below the root a reserved "0. Back" entry leads the list, and a view with
// no children at all gets a placeholder line.
func collapsedLines(current *Folder, atRoot bool) []Line {
	var lines []Line
	if !atRoot {
		lines = append(lines, Line{Kind: LineBack, Index: "0", Label: BackLabel})
	}
	counter := 0
	for _, it := range current.children {
		switch node := it.(type) {
		case *Separator:
			lines = append(lines, Line{Kind: LineSeparator})
		case *Folder:
			counter++
			lines = append(lines, Line{Kind: LineFolder, Index: strconv.Itoa(counter), Label: node.label, Item: node})
		case *Option:
			counter++
			lines = append(lines, Line{Kind: LineOption, Index: strconv.Itoa(counter), Label: node.label, Item: node})
		}
	}
	if len(current.children) == 0 {
		lines = append(lines, Line{Kind: LinePlaceholder, Label: Placeholder})
	}
	return lines
}

func joinIndex(prefix string, n int) string {
	if prefix == "" {
		return strconv.Itoa(n)
	}
	return prefix + "." + strconv.Itoa(n)
}
