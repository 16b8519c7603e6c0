package sortlab

// Complexity holds the asymptotic costs shown next to an algorithm.
type Complexity struct {
	Best    string
	Average string
	Worst   string
	Space   string
}

// Info describes an algorithm for display.
type Info struct {
	Name        string
	Description string
	Complexity  Complexity
}

var catalog = map[Algorithm]Info{
	Bubble: {
		Name:        "Bubble Sort",
		Description: "Repeatedly steps through the list, compares adjacent elements and swaps them if they are in the wrong order.",
		Complexity:  Complexity{Best: "O(n)", Average: "O(n²)", Worst: "O(n²)", Space: "O(1)"},
	},
	Selection: {
		Name:        "Selection Sort",
		Description: "Finds the largest element in the unsorted portion and moves it to the end of that portion.",
		Complexity:  Complexity{Best: "O(n²)", Average: "O(n²)", Worst: "O(n²)", Space: "O(1)"},
	},
	Insertion: {
		Name:        "Insertion Sort",
		Description: "Builds the final sorted array one item at a time by inserting each element into its correct position.",
		Complexity:  Complexity{Best: "O(n)", Average: "O(n²)", Worst: "O(n²)", Space: "O(1)"},
	},
	Merge: {
		Name:        "Merge Sort",
		Description: "Merges sorted runs pairwise, doubling the run length each phase until one run covers the whole array.",
		Complexity:  Complexity{Best: "O(n log n)", Average: "O(n log n)", Worst: "O(n log n)", Space: "O(n)"},
	},
	Quick: {
		Name:        "Quick Sort",
		Description: "Picks a pivot element and partitions the array around the pivot, then sorts the ranges on either side.",
		Complexity:  Complexity{Best: "O(n log n)", Average: "O(n log n)", Worst: "O(n²)", Space: "O(log n)"},
	},
}

// Describe returns display information for a. Unknown algorithms get an
// Info named after the raw value.
func Describe(a Algorithm) Info {
	if info, ok := catalog[a]; ok {
		return info
	}
	return Info{Name: string(a)}
}

// Name returns the display name of a.
func (a Algorithm) Name() string {
	return Describe(a).Name
}
