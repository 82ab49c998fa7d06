// Package config reads the filtercmp configuration file.
//
// The file is a Lua script that returns a table. The script runs with the
// standard libraries loaded and a global "arg" table whose element 0 is the
// file name, so it can compute values or read the environment:
//
//	local M = {}
//	M.data_directory = "."
//	M.sample_rate = 64
//	M.fir = {
//	    design = { order = 32, cutoff = 8, window = "hamming" },
//	    -- beta applies to window = "kaiser" only
//	}
//	M.iir = {
//	    design = { band = "bandpass", order = 2, low = 0.4, high = 4 },
//	}
//	M.lms = { taps = 8, mu = 0.01, channels = 3 }
//	M.logging = {
//	    directory = "log",
//	    file = "filtercmp.log",
//	    size = 1048576,
//	    count = 10,
//	    console = true,
//	    levels = { DEFAULT = "info" },
//	}
//	return M
package config
