// SPDX-License-Identifier: MIT

// Package blobstore abstracts where serialized matrices live.
//
// Implementations:
//   - Local: a directory on the local file system.
//   - Memory: an in-process map, for tests and pipelines.
//   - minio.Store (subpackage): MinIO or any S3-compatible object store.
package blobstore
