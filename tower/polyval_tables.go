// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tower

// The tables below are the fixed invertible GF(2)-affine maps linking the
// tower basis to the polyval basis (spec §3: "Tower<->AES and tower<->
// polyval conversions are fixed invertible affine maps over GF(2), given as
// a 128-row table of 128-bit rows"). Row i is the image of tower/polyval
// basis vector i under the map; ToPolyval/ToTower apply the map by XOR-ing
// together the rows whose index bit is set in the input, exactly as the
// FieldAffineTransformation the tables were ported from does.
//
// Ported verbatim from the reference implementation's two affine tables;
// these are numeric ground truth, not values a reimplementation derives.

var towerToPolyvalRows = [128]string{
	"c2000000000000000000000000000001", "21a09a4bf26aadcd3eb19c5f1a06b528",
	"e62f1a804db43b94852cef0e61d7353d", "adcde131ca862a6ba378ea68e992a5b6",
	"5474611d07bdcd1f72e9bdc82ec4fe6c", "f9a472d4a4965f4caa3532aa6258c986",
	"10bd76c920260f81877681ed1a50b210", "e7f3264523858ca36ef84934fdd225f2",
	"586704bda927015fedb8ddceb7f825d6", "552dab8acfd831aeb65f8aaec9cef096",
	"eccdac666a363defde6792e475892fb3", "4a621d01701247f6e4a8327e33d95aa2",
	"8ed5002fed1f4b9a9a11840f87149e2d", "3c65abbd41c759f0302467db5a791e09",
	"c2df68a5949a96b3aa643692e93caaab", "4455027df88c165117daf9822eb57383",
	"c50e3a207f91d7cd6dd1e116d55455fb", "c89c3920b9b24b755fd08543d8caf5a2",
	"fa583eb935de76a2ec180360b6548830", "c4d3d3b9938f3af77800a5cd03690171",
	"e1faff3b895be1e2bec91c0836143b44", "256bd50f868b82cf1c83552eeb1cd844",
	"82fd35d590073ae9595cab38e9b59d79", "08dadd230bc90e192304a2533cdce9e6",
	"f4400f37acedc7d9502abeff6cead84c", "5438d34e2b5b90328cc88b7384deedfb",
	"7d798db71ef80a3e447cd7d1d4a0385d", "a50d5ef4e33979db8012303dc09cbf35",
	"91c4b5e29de5759e0bb337efbc5b8115", "bbb0d4aaba0fab72848f461ed0a4b110",
	"3c9de86b9a306d6d11cc078904076865", "b5f43a166aa1f15f99db6d689ca1b370",
	"a26153cb8c150af8243ecbd46378e59e", "ccaa154bab1dd7aca876f81fe0c950ab",
	"4185b7e3ee1dddbc761a6139cdb07755", "2c9f95285b7aa574653ed207337325f2",
	"c8ba616ab131bfd242195c4c82d54dbb", "2a9b07221a34865faa36a28da1ab1c24",
	"7e6e572804b548a88b92900e0196dd39", "4e9060deff44c9ef9882a0015debd575",
	"00a3a4d8c163c95ac7ac9a5b424e1c65", "f67c7eb5dde73d96f8f5eecba6033679",
	"54d78d187bbb57d19b536094ba539fde", "76c553699edc5d4a033139975ab7f264",
	"74ae8da43b2f587df3e41bbf5c6be650", "8a2941b59774c41acd850aa6098e5fd2",
	"9ddf65660a6f8f3c0058165a063de84c", "bb52da733635cc3d1ff02ef96ee64cf3",
	"564032a0d5d3773b7b7ed18bebf1c668", "ef5c765e64b24b1b00222054ff0040ef",
	"ade661c18acba6233d484726e6249bee", "9939ba35c969cdeea29f2ef849c2d170",
	"2b100b39761d4f23eb42d05b80174ce2", "fbc25b179830f9eec765bd6229125d6c",
	"b58e089ebe7ad0b2698e30184ab93141", "53874933a148be94d12025afa876234c",
	"41bbc7902188f4e9880f1d81fa580ffb", "ea4199916a5d127d25da1fe777b2dcbb",
	"e7bc816547efbe987d9359ee0de0c287", "02e0f1f67e7139835892155a7addd9da",
	"dc6beb6eade9f875e74955ca950af235", "786d616edeadfa356453a78d8f103230",
	"e84e70191accaddac8034da936737487", "012b8669ff3f451e5363edfddd37fb3c",
	"756209f0893e96877833c194b9c943a0", "b2ac9efc9a1891369f63bd1e0d1439ac",
	"4de88e9a5bbb4c3df650cc3994c3d2d8", "8de7b5c85c07f3359849e7c85e426b54",
	"cadd54ae6a7e72a4f184e6761cf226d4", "cdb182fb8d95496f55b5f3952f81bc30",
	"40013bc3c81722753a05bb2aca01a02e", "704e7ce55e9033883e97351591adf18a",
	"f330cd9a74a5e884988c3f36567d26f4", "18f4535304c0d74ac3bdf09d78cbde50",
	"fe739c97fc26bed28885b838405c7e7e", "492479260f2dcd8af980c3d74b3ec345",
	"96b6440a34de0aad4ea2f744396691af", "98355d1b4f7cfb03960a59aa564a7a26",
	"2703fda0532095ca8b1886b12ca37d64", "59c9dabe49bebf6b468c3c120f142822",
	"f8f3c35c671bac841b14381a592e6cdd", "d7b888791bd83b13d80d2e9324894861",
	"113ab0405354dd1c5aab9658137fa73f", "ae56192d5e9c309e461f797121b28ce6",
	"b7927ec7a84c2e04811a6dac6b997783", "9e2f8d67fc600703ba9b4189ce751cb4",
	"574e95df2d8bb9e2c8fc29729eb723ca", "38bc6fc47739c06cd9fa20f9a5088f26",
	"69d3b9b1d9483174b3c38d8f95ce7a5f", "d6e4bb147cc82b6e90e27e882f18640d",
	"027338db641804d985cd9fece12f7adc", "523cb73968169ccce76f523928c4364e",
	"cdcf898117f927208a11b0dcc941f2f6", "c908287814c8cba67f7892fec7a5b217",
	"92b99988bb26215d104968d4cbbb285a", "4dbca8fd835d00ea4b95692534ef5068",
	"cd8b92c8a6e0e65e167a2b851f32fd9c", "c3473dfda9f97d6ac1e2d544628e7845",
	"0260e7badc64dbfde0dc39a240365722", "3966125b40fe2bca9719c80e41953868",
	"ac0211506eda3cba57b709a360d4a2c7", "0e4f0e47d02fedd15b337fefa219c52b",
	"1d5907ccdc659f7aace675511f754ee3", "4ad5b368eaddc4bb097284863b2a5b6e",
	"2eae07273b8c4fc5cef553a4a46cde5b", "096a310e7b1e3a3179d4a3b5d8dd9396",
	"8c81362eeb1656a91dde08d05018a353", "387e59e44cc0d53fecf7f057b6fdba0b",
	"9d29670bbd0e8051ac82d91ca97561d6", "af1310d0f5cac4e89714e48065be74a4",
	"9b684a3865c2b59c411d14182a36fb6b", "3e7de163516ffdcaca22b4e848340fbe",
	"3c37dbe331de4b0dc2f5db315d5e7fda", "19e7f4b53ff86990e3d5a1c40c3769a0",
	"56469ab32b2b82e8cc93fdb1b14a4775", "9c01cefde47816300d8ad49d260bb71b",
	"6100101b8cebde7381366fec1e4e52c0", "a28d30c3cbd8b69632143fa65158ee4f",
	"3db7a902ec509e58151c45f71eee6368", "42d5a505e8ab70097107d37d79ebbaba",
	"e47b83247cb2b162c7d6d15c84cca8ce", "076caf0e23541c753e4c87ff505737a5",
	"590a8d1cdbd17ae83980f5d1d3b84a89", "77d649ff61a7cd0da53497edd34c4204",
	"efbe0c34eeab379ea4a8feed84fd3993", "90540cf7957a8a3051629cdde777f968",
	"8749050496dd288244c49c70aa92831f", "0fc80b1d600406b2370368d94947961a",
}

var polyvalToTowerRows = [128]string{
	"66e1d645d7eb87dca8fc4d30a32dadcc", "53ca87ba77172fd8c5675d78c59c1901",
	"1a9cf63d31827dcda15acb755a948567", "a8f28bdf6d29cee2474b0401a99f6c0a",
	"4eefa9efe87ed19c06b39ca9799c8d73", "06ec578f505abf1e9885a6b2bc494f3e",
	"70ecdfe1f601f8509a96d3fb9cd3348a", "cb0d16fc7f13733deb25f618fc3faf28",
	"4e9a97aa2c84139ffcb578115fcbef3c", "c6de6210afe8c6bd9a441bffe19219ad",
	"73e3e8a7c59748601be5bf1e30c488d3", "1f6d67e2e64bd6c4b39e7f4bb37dce9c",
	"c34135d567eada885f5095b4c155f3b5", "23f165958d59a55e4790b8e2e37330e4",
	"4f2be978f16908e405b88802add08d17", "6442b00f5bbf4009907936513c3a7d45",
	"ac63f0397d911a7a5d61b9f18137026f", "8e70543ae0e43313edf07cbc6698e144",
	"cb417a646d59f652aa5a07984066d026", "f028de8dd616318735bd8f76de7bb84e",
	"2e03a12472d21599f15b4bcaa9bf186c", "54a376cc03e5b2cfa27d8e48d1b9ca76",
	"d22894c253031b1b201b87da07cb58ae", "6bc1416afea6308ff77d902dd5d2a563",
	"9958ecd28adbebf850055f8ac3095121", "595a1b37062233d7e6bb6f54c227fb91",
	"41ffcfcdda4583c4f671558ee315d809", "780c2490f3e5cb4763e982ec4b3e6ea2",
	"f7a450b35931fa76722a6b9037b6db34", "e21991100e84821328592772430ad07e",
	"360d4079f62863cc60c65ec87d6f9277", "d898bfa0b076cc4eaca590e7a60dbe92",
	"caacddd5e114fe5c2e1647fc34b549bf", "3042e34911c28e90617776ddb2d3f888",
	"3728a3b0da53cdfecfd8455b13cb9b14", "2f2eb3d5bc7b2c48a7c643bffbddc6b2",
	"3b71a5c04010c0aa501b04302706b908", "0701845b090e79bb9be54df766e48c51",
	"1e9eac7bf45b14c8db06fcfff7408f78", "6b1b8e39a339423d0eb3bef69eee8b0b",
	"8b06616385967df95d3a99cff1edcf0a", "5d921137890a3ded58e1dd1a51fe6a30",
	"828ed6fba42805b2628b705d38121acc", "9b7a95220e9d5b0ff70ecb6116cabd81",
	"0eb9055cb11711ed047f136cab751c88", "d6f590777c17a6d0ca451290f7d5c78a",
	"401a922a6461fbe691f910cb0893e71f", "15a549308bc53902c927ebad9ed253f7",
	"45dccafc72a584480f340a43f11a1b84", "19d2a2c057d60656e6d3e20451335d5b",
	"035af143a5827a0f99197c8b9a811454", "7ee35d174ad7cc692191fd0e013f163a",
	"c4c0401d841f965c9599fac8831effa9", "63e809a843fc04f84acfca3fc5630691",
	"db2f3301594e3de49fb7d78e2d6643c4", "1b31772535984ef93d709319cc130a7c",
	"036dc9c884cd6d6c918071b62a0593f3", "4700cd0e81c88045132360b078027103",
	"dfa3f35eb236ea63b0350e17ed2d625d", "f0fd7c7760099f1ac28be91822978e15",
	"852a1eba3ad160e95034e9eed1f21205", "4a07dd461892df45ca9efee1701763c3",
	"adbbaa0add4c82fe85fd61b42f707384", "5c63d0673f33c0f2c231db13f0e15600",
	"24ddc1516501135626e0e794dd4b3076", "b60c601bbf72924e38afd02d201fb05b",
	"2ef68918f416caca84334bcf70649aeb", "0b72a3124c504bcad815534c707343f2",
	"cfd8b2076040c43d5d396f8523d80fe0", "098d9daf64154a63504192bb27cc65e1",
	"3ae44070642e6720283621f8fb6a6704", "19cd9b2843d0ff936bfe2b373f47fd05",
	"451e2e4159c78e65db10450431d26122", "797b753e29b9d0e9423b36807c70f3ae",
	"a8d0e8ba9bb634f6ea30600915664e22", "df8c74bbd66f86809c504cb944475b0a",
	"32831a457ced3a417a5a94d498128018", "1aca728985936a6147119b9b5f00350e",
	"6f436d64b4ee1a556b66764ed05bb1db", "25930eaed3fd982915e483cb21e5a1a2",
	"21735f5eb346e56006bf1d7e151780ab", "55fc6f607f10e17f805eb16d7bd5345c",
	"4b4d289591f878114965292af4aeb57e", "30608bc7444bcbaff67998c1883c1cf3",
	"a12a72abe4152e4a657c6e6395404343", "7579186d4e0959dec73f9cd68fb0e2fb",
	"b5560ce63f7894cc965c822892b7bfda", "6b06d7165072861eba63d9fd645995d7",
	"359f439f5ec9107dde3c8ef8f9bf4e29", "cbfe7985c6006a46105821cd8b55b06b",
	"2110b3b51f5397ef1129fb9076474061", "1928478b6f3275c944c33b275c388c47",
	"23f978e6a0a54802437111aa4652421a", "e8c526bf924dc5cd1dd32dbedd310f5b",
	"a0ac29f901f79ed5f43c73d22a05c8e4", "55e0871c6e97408f47f4635b747145ea",
	"6c2114c3381f53667d3c2dfefd1ebcb3", "42d23c18722fbd58863c3aceaaa3eef7",
	"bb0821ab38d5de133838f8408a72fdf1", "035d7239054762b131fa387773bb9153",
	"8fa898aafe8b154f9ab652e8979139e7", "6a383e5cd4a16923c658193f16cb726c",
	"9948caa8c6cefb0182022f32ae3f68b9", "8d2a8decf9855bd4df7bac577ed73b44",
	"09c7b8300f0f984259d548c5aa959879", "92e16d2d24e070efdca8b8e134047afc",
	"47d8621457f4118aaf24877fb5031512", "25576941a55f0a0c19583a966a85667f",
	"b113cad79cd35f2e83fda3bc6285a8dc", "c76968eecb2748d0c3e6318431ffe580",
	"7211122aa7e7f6fe39e6618395b68416", "88463599bf7d3e92f450d00a45146d11",
	"6e12b7d5adf95da33bbb7f79a18ee123", "e0a98ac4025bc568eaca7e7b7280ff16",
	"c13fc79f6c35048df274057ac892ff77", "93c1a3145d4e47dee39cae4de47eb505",
	"780064be3036df98f1e5d7c53bdbd52b", "48c467b5cec265628b709172ecaff561",
	"5bbbab77ce5552ff7682094560524a7e", "551537ef6048831fb128fec4e4a23a63",
	"e7ef397fcc095ead439317a13568b284", "bc5d2927eac0a720f9d75d62d92c6332",
	"3bfeb420021f93e9b2bc992b5b59e61e", "c651dc438e2f1bc64af1b7307b574ed9",
	"bfe0a17ee2b777542a1ddb55413a4e43", "a062da2427df3d1a7dfc01c05d732a32",
	"1e4889fd72b70ecf93417ba0b085e1e8", "c4f4769f4f9c2e33c26a6bf2ca842f17",
}

var towerToPolyvalTable [128]Polyval128
var polyvalToTowerTable [128]T128

func init() {
	for i, h := range towerToPolyvalRows {
		towerToPolyvalTable[i] = Polyval128{hexU128(h)}
	}
	for i, h := range polyvalToTowerRows {
		polyvalToTowerTable[i] = T128FromU128(hexU128(h))
	}
}

// ToPolyval applies the fixed tower->polyval affine map.
func (a T128) ToPolyval() Polyval128 {
	acc := Polyval128{}
	v := a.v
	for i := 0; i < 128; i++ {
		if v.BitAt(uint(i)) {
			acc = acc.Add(towerToPolyvalTable[i])
		}
	}
	return acc
}

// ToTower applies the fixed polyval->tower affine map. The map is applied
// directly to the stored (Montgomery-form) bits, matching the Rust
// `From<BinaryField128bPolyval> for BinaryField128b` impl; on those bits it
// is a field isomorphism, so OnePolyval128 maps to OneT128 and ToPolyval
// is its inverse.
func (a Polyval128) ToTower() T128 {
	acc := T128{}
	v := a.v
	for i := 0; i < 128; i++ {
		if v.BitAt(uint(i)) {
			acc = acc.Add(polyvalToTowerTable[i])
		}
	}
	return acc
}
