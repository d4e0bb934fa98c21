package mojify

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"

	"github.com/npillmayer/mojify/token"
)

// Token scanners are used once per sentence and then discarded. To avoid
// repeated allocation of scanners and their buffers we will pool them.
type scannerPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalScannerPool *scannerPool

func init() {
	globalScannerPool = &scannerPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return token.NewScanner(), nil
		})
	globalScannerPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalScannerPool.opool = pool.NewObjectPool(globalScannerPool.ctx, factory, config)
}

// borrowScanner fetches a scanner from the pool. Callers must hand it back
// with releaseScanner when the sentence is processed.
func borrowScanner() *token.Scanner {
	o, _ := globalScannerPool.opool.BorrowObject(globalScannerPool.ctx)
	return o.(*token.Scanner)
}

// releaseScanner clears the scanner and puts it back into the pool.
func releaseScanner(scanner *token.Scanner) {
	scanner.Init(nil) // drop the input source; buffers are kept for re-use
	_ = globalScannerPool.opool.ReturnObject(globalScannerPool.ctx, scanner)
}
