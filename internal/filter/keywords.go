package filter

// DefaultWBKeywords match West Bengal state recruitment. Trailing spaces are
// significant: "wb " must not match inside "wbpsc".
var DefaultWBKeywords = []string{
	"west bengal", "wb ", "wbpsc", "kolkata", "wbhrb", "wb police",
	"wbsetcl", "wbsedcl", "wbhealth", "calcutta", "wbp ", "wbconstable",
}

// DefaultCentralKeywords match central government bodies and PSUs.
var DefaultCentralKeywords = []string{
	"upsc", "ssc", "central", "railway", "rrb", "ibps", "sbi", "rbi",
	"navy", "army", "air force", "drdo", "isro", "bsf", "crpf", "cisf",
	"itbp", "ssb", "nia", "assam rifles", "india post", "gds", "aicte",
	"ugc", "ntpc", "ongc", "bhel", "gail", "sail", "coal india", "lic",
}
