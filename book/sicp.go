package book

// Book level constants used in generated metadata.
const (
	BookTitle   = "Structure and Interpretation of Computer Programs"
	Language    = "en-us"
	ISBN        = "0262011530"
	Creator     = "Abelson and Sussman"
	Description = "Structure and Interpretation of Computer Programs, 2nd edition"
	Subject     = "Electronic Digital Computers -- Programming"
	Publisher   = "The MIT Press"

	// TOCPage and StartPage are ids of the pages guide references point to.
	TOCPage   = 4
	StartPage = 9
)

func e(id int, title string, children ...Entry) Entry {
	return Entry{ID: id, Title: Text(title), Children: children}
}

// SICP returns table of contents of the second edition. Titles are kept as
// they appear in the HTML edition, typos included.
func SICP() Contents {
	return Contents{
		e(1, "Structure and Interpretation of Computer Programs"),
		e(4, "Contents"),
		e(5, "Foreword"),
		e(6, "Preface to the Second Edition"),
		e(7, "Preface to the First Edition"),
		e(8, "Acknowledgments"),
		e(9, "1 Building Abstractions with Procedures",
			e(10, "1.1 The Elements of Programming"),
			e(11, "1.2 Procedures and the Processes They Generate"),
			e(12, "1.3 Formulating Abstractions with Higher-Order Procedures"),
		),
		e(13, "2 Building Abstractions with Data",
			e(14, "2.1 Introduction to Data Abstraction"),
			e(15, "2.2 Hierarchical Data and the Closure Property"),
			e(16, "2.3 Symbolic Data"),
			e(17, "2.4 Multiple Representations for Abstract Data"),
			e(18, "2.5 Systems with Generic Operations"),
		),
		e(19, "3 Modularity, Objects, and State",
			e(20, "3.1 Assignment and Local State"),
			e(21, "3.2 The Environment Model of Evaluation"),
			e(22, "3.3 Modeling with Mutable Data"),
			e(23, "3.4 Concurrency: Time Is of the Essence"),
			e(24, "3.5 Streams"),
		),
		e(25, "4 Metalinguistic Abstraction",
			e(26, "4.1 The Metacircular Evaluator"),
			e(27, "4.2 Variations on a Scheme -- Lazy Evaluation"),
			e(28, "4.3 Variations on a Scheme -- Nodeterministic Computing"),
			e(29, "4.4 Logic Programming"),
		),
		e(30, "5 Computing with Register Machines",
			e(31, "5.1 Designing Register Machines"),
			e(32, "5.2 A Register-Machine Simulator"),
			e(33, "5.3 Storage Allocation and Garbage Collection"),
			e(34, "5.4 The Explicit-Control Evaluator"),
			e(35, "5.5 Compliation"),
		),
		e(36, "References"),
		e(37, "List of Exercises"),
		e(38, "Index"),
	}
}
