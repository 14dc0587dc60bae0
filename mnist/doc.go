// Copyright 2026 The mf Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package mnist decodes the MNIST test set from its IDX image and label files.
//
// # Overview
//
// An image file holds a 16-byte big-endian header (magic 0x00000803, image
// count, rows, columns) followed by 28×28 unsigned-byte pixels per image. A
// label file holds an 8-byte header (magic 0x00000801, label count) followed
// by one byte per label. Decoding validates both headers, normalizes every
// pixel to [0, 1] and pairs images with labels by index.
//
// # Basic Usage
//
//	ds, err := mnist.LoadFiles("t10k-images-idx3-ubyte", "t10k-labels-idx1-ubyte")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sample, _ := ds.Sample(0)
//	fmt.Println(sample.Label, sample.At(14, 14))
//
// Malformed input yields *FormatError, naming the stream and wrapping one of
// the Err* sentinels; unreadable files yield *source.NotFoundError.
package mnist
