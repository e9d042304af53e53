package rpcclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Request-kind codes are the external wire contract: this test pins the
// numbering down so a refactor cannot silently renumber them.
func TestRequestKindCodesAreStable(t *testing.T) {
	want := map[RequestKind]int64{
		KindAPI: 1, KindCommand: 2, KindConfiguration: 3, KindConsole: 4,
		KindDataArray: 5, KindDataAttr: 6, KindDataIndex: 7, KindDataShape: 8,
		KindDoc: 9, KindEqual: 10, KindException: 11, KindExit: 12,
		KindGet: 13, KindGetAttr: 14, KindFilter: 15, KindImport: 16,
		KindIndex: 17, KindKey: 18, KindLen: 19, KindLess: 20,
		KindLine: 21, KindLog: 22, KindObjectTypes: 23, KindQuery: 24,
		KindRegister: 25, KindRelease: 26, KindRepr: 27, KindResourceKey: 28,
		KindResourceLen: 29, KindResult: 30, KindRunAPI: 31, KindService: 32,
		KindSetAttr: 33, KindSetEnv: 34, KindTest: 35, KindTokens: 36,
		KindTranslate: 37, KindTypeCall: 38, KindTypeConstruct: 39, KindTypeCmp: 40,
		KindTypeDoc: 41, KindTypeGetAttr: 42, KindTypeGetItem: 43, KindTypeIter: 44,
		KindTypeLen: 45, KindTypeRepr: 46, KindTypeSetAttr: 47, KindTypeSetItem: 48,
		KindTypeStr: 49,
		KindTest0: 1000, KindTest1: 1001, KindTest2: 1002, KindTest3: 1003,
		KindTest4: 1004, KindTest5: 1005,
	}
	for kind, code := range want {
		assert.Equal(t, code, int64(kind))
	}
}
