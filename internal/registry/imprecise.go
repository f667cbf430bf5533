package registry

// impreciseNames maps license names seen in the wild to the SPDX short
// identifier they almost certainly mean. Matching is case-insensitive
// and prefix-based, so the table must stay ordered longest prefix
// first; a shorter synonym earlier in the table would shadow a longer
// one ("apache" before "apache license 2.0" would never let the long
// form consume its full text).
var impreciseNames = [...]struct {
	prefix string
	name   string
}{
	{"apache license, version 2.0", "Apache-2.0"},
	{"apache software license 2.0", "Apache-2.0"},
	{"berkeley software distribution (bsd)", "BSD-2-Clause"},
	{"gnu lesser general public license", "LGPL-2.1"},
	{"gnu general public license v2", "GPL-2.0"},
	{"gnu general public license v3", "GPL-3.0"},
	{"simplified bsd license", "BSD-2-Clause"},
	{"apache license 2.0", "Apache-2.0"},
	{"mozilla public license 2.0", "MPL-2.0"},
	{"new bsd license", "BSD-3-Clause"},
	{"3-clause bsd", "BSD-3-Clause"},
	{"2-clause bsd", "BSD-2-Clause"},
	{"bsd 3-clause", "BSD-3-Clause"},
	{"bsd 2-clause", "BSD-2-Clause"},
	{"mit license", "MIT"},
	{"apache 2.0", "Apache-2.0"},
	{"apache-2.0", "Apache-2.0"},
	{"lgpl-2.1", "LGPL-2.1"},
	{"lgpl-3.0", "LGPL-3.0"},
	{"agpl-3.0", "AGPL-3.0"},
	{"gfdl-1.1", "GFDL-1.1"},
	{"gfdl-1.2", "GFDL-1.2"},
	{"gfdl-1.3", "GFDL-1.3"},
	{"apache2", "Apache-2.0"},
	{"gpl-1.0", "GPL-1.0"},
	{"gpl-2.0", "GPL-2.0"},
	{"gpl-3.0", "GPL-3.0"},
	{"zlib/libpng", "Zlib"},
	{"apache", "Apache-2.0"},
	{"gpl v1", "GPL-1.0"},
	{"gpl v2", "GPL-2.0"},
	{"gpl v3", "GPL-3.0"},
	{"gplv2", "GPL-2.0"},
	{"gplv3", "GPL-3.0"},
	{"lgpl", "LGPL-2.1"},
	{"agpl", "AGPL-3.0"},
	{"bsd", "BSD-2-Clause"},
	{"gpl", "GPL-3.0"},
	{"isc", "ISC"},
	{"mit", "MIT"},
	{"mpl", "MPL-2.0"},
	{"zlib", "Zlib"},
}
