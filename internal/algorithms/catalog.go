package algorithms

type Category string

const (
	CategorySorting   Category = "Sorting"
	CategorySearching Category = "Searching"
	CategoryGraph     Category = "Graph"
)

type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

type Complexity struct {
	Best    string
	Average string
	Worst   string
}

// Limits bound the input handed to a generator. They exist to keep the
// rendering and the step count small; generators themselves accept any size.
type Limits struct {
	MaxLen         int
	RequiresSorted bool
	NeedsTarget    bool
}

// Info is the static catalog entry for an algorithm.
type Info struct {
	ID            string
	Name          string
	Category      Category
	Description   string
	Time          Complexity
	Space         string
	Difficulty    Difficulty
	Limits        Limits
	Implemented   bool
	DefaultValues []int
	DefaultTarget int
}

const (
	IDBubbleSort   = "bubble-sort"
	IDBinarySearch = "binary-search"
	IDMergeSort    = "merge-sort"
	IDDFS          = "dfs"
)

// Catalog lists every known algorithm in display order.
var Catalog = []Info{
	{
		ID:            IDBubbleSort,
		Name:          "Bubble Sort",
		Category:      CategorySorting,
		Description:   "Repeatedly walks the list, compares neighbours and swaps them when they are out of order.",
		Time:          Complexity{Best: "O(n)", Average: "O(n²)", Worst: "O(n²)"},
		Space:         "O(1)",
		Difficulty:    Easy,
		Limits:        Limits{MaxLen: 10},
		Implemented:   true,
		DefaultValues: []int{64, 34, 25, 12, 22, 11, 90},
	},
	{
		ID:            IDBinarySearch,
		Name:          "Binary Search",
		Category:      CategorySearching,
		Description:   "Finds a value in a sorted array by halving the search interval on every probe.",
		Time:          Complexity{Best: "O(1)", Average: "O(log n)", Worst: "O(log n)"},
		Space:         "O(1)",
		Difficulty:    Easy,
		Limits:        Limits{MaxLen: 15, RequiresSorted: true, NeedsTarget: true},
		Implemented:   true,
		DefaultValues: []int{1, 3, 5, 7, 9, 11, 13, 15, 17, 19},
		DefaultTarget: 7,
	},
	{
		ID:            IDMergeSort,
		Name:          "Merge Sort",
		Category:      CategorySorting,
		Description:   "Stable divide-and-conquer sort: split in halves, sort each, merge the sorted runs.",
		Time:          Complexity{Best: "O(n log n)", Average: "O(n log n)", Worst: "O(n log n)"},
		Space:         "O(n)",
		Difficulty:    Medium,
		Limits:        Limits{MaxLen: 10},
		Implemented:   true,
		DefaultValues: []int{64, 34, 25, 12, 22, 11, 90},
	},
	{
		ID:          IDDFS,
		Name:        "Depth-First Search",
		Category:    CategoryGraph,
		Description: "Graph traversal that follows each branch as deep as possible before backtracking.",
		Time:        Complexity{Best: "O(V + E)", Average: "O(V + E)", Worst: "O(V + E)"},
		Space:       "O(V)",
		Difficulty:  Medium,
	},
}
