// SPDX-License-Identifier: EPL-2.0

// Package sink is the consumer side of a capture stage. It runs outside the
// real-time context, drains the frames a processor.ChanOutput queues, and
// writes them to storage or a stream.
//
//	pool := processor.NewFramePool(4096, 16)
//	out := processor.NewChanOutput(8, pool)
//	s := sink.New(out.Frames(), sink.NewRawWriter(conn),
//	    sink.WithPool(pool),
//	    sink.WithLogger(logger),
//	    sink.WithMetrics(sink.NewMetrics(prometheus.DefaultRegisterer, out)),
//	)
//	go s.Run(ctx)
//
// Frames are returned to the pool after they are written, which keeps the
// producer allocation-free once the pool is warm.
package sink
