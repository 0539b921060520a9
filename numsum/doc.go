/*
Package numsum adds up a source that holds one number per line.

A source is a local path or an S3 object addressed as s3://bucket/key. Each
line is trimmed and parsed as a float64. Failures come back as typed errors
from the errors package, or, through Evaluate, as a Result with a named
Failure kind:

	res := numsum.New().Evaluate(ctx, "numbers.txt")
	if !res.OK() {
	    fmt.Println(res.Failure) // "File not found" or "Invalid number in file"
	}

S3 sources need a client:

	s := numsum.New(numsum.WithObjectGetter(aws.NewS3(cfg)))
*/
package numsum
