package rpcclient

// RequestKind enumerates the request codes carried in a request frame's
// "value" field. These codes are the external wire contract and must
// remain numerically stable: renumbering any of them breaks every
// deployed peer.
type RequestKind int64

const (
	KindAPI           RequestKind = 1
	KindCommand       RequestKind = 2
	KindConfiguration RequestKind = 3
	KindConsole       RequestKind = 4
	KindDataArray     RequestKind = 5
	KindDataAttr      RequestKind = 6
	KindDataIndex     RequestKind = 7
	KindDataShape     RequestKind = 8
	KindDoc           RequestKind = 9
	KindEqual         RequestKind = 10
	KindException     RequestKind = 11
	KindExit          RequestKind = 12
	KindGet           RequestKind = 13
	KindGetAttr       RequestKind = 14
	KindFilter        RequestKind = 15
	KindImport        RequestKind = 16
	KindIndex         RequestKind = 17
	KindKey           RequestKind = 18
	KindLen           RequestKind = 19
	KindLess          RequestKind = 20
	KindLine          RequestKind = 21
	KindLog           RequestKind = 22
	KindObjectTypes   RequestKind = 23
	KindQuery         RequestKind = 24
	KindRegister      RequestKind = 25
	KindRelease       RequestKind = 26
	KindRepr          RequestKind = 27
	KindResourceKey   RequestKind = 28
	KindResourceLen   RequestKind = 29
	KindResult        RequestKind = 30
	KindRunAPI        RequestKind = 31
	KindService       RequestKind = 32
	KindSetAttr       RequestKind = 33
	KindSetEnv        RequestKind = 34
	KindTest          RequestKind = 35
	KindTokens        RequestKind = 36
	KindTranslate     RequestKind = 37
	KindTypeCall      RequestKind = 38
	KindTypeConstruct RequestKind = 39
	KindTypeCmp       RequestKind = 40
	KindTypeDoc       RequestKind = 41
	KindTypeGetAttr   RequestKind = 42
	KindTypeGetItem   RequestKind = 43
	KindTypeIter      RequestKind = 44
	KindTypeLen       RequestKind = 45
	KindTypeRepr      RequestKind = 46
	KindTypeSetAttr   RequestKind = 47
	KindTypeSetItem   RequestKind = 48
	KindTypeStr       RequestKind = 49

	KindTest0 RequestKind = 1000
	KindTest1 RequestKind = 1001
	KindTest2 RequestKind = 1002
	KindTest3 RequestKind = 1003
	KindTest4 RequestKind = 1004
	KindTest5 RequestKind = 1005
)
