// SPDX-License-Identifier: MIT

// Package minio implements blobstore.Store for MinIO and S3-compatible storage.
package minio
