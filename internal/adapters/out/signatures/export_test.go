package signatures

// NewS3StoreWithClient exposes the client seam to external tests.
var NewS3StoreWithClient = func(client objectPutter, bucket string) *S3Store {
	return newS3Store(client, bucket)
}
