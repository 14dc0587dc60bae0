// Package mnist decodes the MNIST handwritten-digit dataset from its IDX
// binary files.
//
// IDX file format for images:
//
//	magic number: 00 00 08 03 (uint8 data, 3 dimensions)
//	number of images: 4 bytes
//	number of rows: 4 bytes (28)
//	number of cols: 4 bytes (28)
//	pixel data: unsigned bytes (0-255)
//
// IDX file format for labels:
//
//	magic number: 00 00 08 01 (uint8 data, 1 dimension)
//	number of labels: 4 bytes
//	label data: unsigned bytes (0-9)
//
// All header words are big-endian. Pixels are normalized to [0, 1] while
// decoding, and the decoded Dataset keeps every image in one flat buffer.
package mnist
