// Package sequence imports uniformly sampled scalar sequences.
//
// A [Source] yields the samples either from an in-memory slice ([Values]) or
// from one column of a delimiter-separated text file ([File]):
//
//	seq, err := sequence.File("data.csv", &sequence.ImportOptions{
//	    Column:    1,
//	    Delimiter: ';',
//	    Quote:     '"',
//	    SkipLines: 1,
//	}).Samples()
//
// Leading lines are skipped by position only. Blank lines are ignored. Any
// other row whose selected field is missing or not a number aborts the
// import with a [*MalformedDataError]; no partial sequence is returned.
package sequence
