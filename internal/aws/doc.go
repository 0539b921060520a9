// Package aws loads AWS SDK v2 configuration shared by the S3 source reader
// and the DynamoDB datastore.
package aws
