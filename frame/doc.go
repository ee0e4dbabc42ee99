// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package frame holds the per-frame state shared by the overlay engine and
// its categories.
//
// A Frame is created by the host and handed to every engine stage. The
// engine attaches the Private state, the extra call buffers and the dupli
// cache to it. Categories implement any subset of the stage interfaces
// (Initializer, CacheInitializer, Populator, ...) and are identified by a
// CategoryID.
package frame
