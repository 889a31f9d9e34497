package iers

// luniSolar2000 holds the 77 largest luni-solar terms of the IAU 2000 nutation
// series in descending order of amplitude. Amplitudes are in 0.1 µas.
var luniSolar2000 = [...]luniSolarTerm{
	{0, 0, 0, 0, 1, -172064161, -174666, 33386, 92052331, 9086, 15377},
	{0, 0, 2, -2, 2, -13170906, -1675, -13696, 5730336, -3015, -4587},
	{0, 0, 2, 0, 2, -2276413, -234, 2796, 978459, -485, 1374},
	{0, 0, 0, 0, 2, 2074554, 207, -698, -897492, 470, -291},
	{0, 1, 0, 0, 0, 1475877, -3633, 11817, 73871, -184, -1924},
	{0, 1, 2, -2, 2, -516821, 1226, -524, 224386, -677, -174},
	{1, 0, 0, 0, 0, 711159, 73, -872, -6750, 0, 358},
	{0, 0, 2, 0, 1, -387298, -367, 380, 200728, 18, 318},
	{1, 0, 2, 0, 2, -301461, -36, 816, 129025, -63, 367},
	{0, -1, 2, -2, 2, 215829, -494, 111, -95929, 299, 132},
	{0, 0, 2, -2, 1, 128227, 137, 181, -68982, -9, 39},
	{-1, 0, 2, 0, 2, 123457, 11, 19, -53311, 32, -4},
	{-1, 0, 0, 2, 0, 156994, 10, -168, -1235, 0, 82},
	{1, 0, 0, 0, 1, 63110, 63, 27, -33228, 0, -9},
	{-1, 0, 0, 0, 1, -57976, -63, -189, 31429, 0, -75},
	{-1, 0, 2, 2, 2, -59641, -11, 149, 25543, -11, 66},
	{1, 0, 2, 0, 1, -51613, -42, 129, 26366, 0, 78},
	{-2, 0, 2, 0, 1, 45893, 50, 31, -24236, -10, 20},
	{0, 0, 0, 2, 0, 63384, 11, -150, -1220, 0, 29},
	{0, 0, 2, 2, 2, -38571, -1, 158, 16452, -11, 68},
	{0, -2, 2, -2, 2, 32481, 0, 0, -13870, 0, 0},
	{-2, 0, 0, 2, 0, -47722, 0, -18, 477, 0, -25},
	{2, 0, 2, 0, 2, -31046, -1, 131, 13238, -11, 59},
	{1, 0, 2, -2, 2, 28593, 0, -1, -12338, 10, -3},
	{-1, 0, 2, 0, 1, 20441, 21, 10, -10758, 0, -3},
	{2, 0, 0, 0, 0, 29243, 0, -74, -609, 0, 13},
	{0, 0, 2, 0, 0, 25887, 0, -66, -550, 0, 11},
	{0, 1, 0, 0, 1, -14053, -25, 79, 8551, -2, -45},
	{-1, 0, 0, 2, 1, 15164, 10, 11, -8001, 0, -1},
	{0, 2, 2, -2, 2, -15794, 72, -16, 6850, -42, -5},
	{0, 0, -2, 2, 0, 21783, 0, 13, -167, 0, 13},
	{1, 0, 0, -2, 1, -12873, -10, -37, 6953, 0, -14},
	{0, -1, 0, 0, 1, -12654, 11, 63, 6415, 0, 26},
	{-1, 0, 2, 2, 1, -10204, 0, 25, 5222, 0, 15},
	{0, 2, 0, 0, 0, 16707, -85, -10, 168, -1, 10},
	{1, 0, 2, 2, 2, -7691, 0, 44, 3268, 0, 19},
	{-2, 0, 2, 0, 0, -11024, 0, -14, 104, 0, 2},
	{0, 1, 2, 0, 2, 7566, -21, -11, -3250, 0, -5},
	{0, 0, 2, 2, 1, -6637, -11, 25, 3353, 0, 14},
	{0, -1, 2, 0, 2, -7141, 21, 8, 3070, 0, 4},
	{0, 0, 0, 2, 1, -6302, -11, 2, 3272, 0, 4},
	{1, 0, 2, -2, 1, 5800, 10, 2, -3045, 0, -1},
	{2, 0, 2, -2, 2, 6443, 0, -7, -2768, 0, -4},
	{-2, 0, 0, 2, 1, -5774, -11, -15, 3041, 0, -5},
	{2, 0, 2, 0, 1, -5350, 0, 21, 2695, 0, 12},
	{0, -1, 2, -2, 1, -4752, -11, -3, 2719, 0, -3},
	{0, 0, 0, -2, 1, -4940, -11, -21, 2720, 0, -9},
	{-1, -1, 0, 2, 0, 7350, 0, -8, -51, 0, 4},
	{2, 0, 0, -2, 1, 4065, 0, 6, -2206, 0, 1},
	{1, 0, 0, 2, 0, 6579, 0, -24, -199, 0, 2},
	{0, 1, 2, -2, 1, 3579, 0, 5, -1900, 0, 1},
	{1, -1, 0, 0, 0, 4725, 0, -6, -41, 0, 3},
	{-2, 0, 2, 0, 2, -3075, 0, -2, 1313, 0, -1},
	{3, 0, 2, 0, 2, -2904, 0, 15, 1233, 0, 7},
	{0, -1, 0, 2, 0, 4348, 0, -10, -81, 0, 2},
	{1, -1, 2, 0, 2, -2878, 0, 8, 1232, 0, 4},
	{0, 0, 0, 1, 0, -4230, 0, 5, -20, 0, -2},
	{-1, -1, 2, 2, 2, -2819, 0, 7, 1207, 0, 3},
	{-1, 0, 2, 0, 0, -4056, 0, 5, 40, 0, -2},
	{0, -1, 2, 2, 2, -2647, 0, 11, 1129, 0, 5},
	{-2, 0, 0, 0, 1, -2294, 0, -10, 1266, 0, -4},
	{1, 1, 2, 0, 2, 2481, 0, -7, -1062, 0, -3},
	{2, 0, 0, 0, 1, 2179, 0, -2, -1129, 0, -2},
	{-1, 1, 0, 1, 0, 3276, 0, 1, -9, 0, 0},
	{1, 1, 0, 0, 0, -3389, 0, 5, 35, 0, -2},
	{1, 0, 2, 0, 0, 3339, 0, -13, -107, 0, 1},
	{-1, 0, 2, -2, 1, -1987, 0, -6, 1073, 0, -2},
	{1, 0, 0, 0, 2, -1981, 0, 0, 854, 0, 0},
	{-1, 0, 0, 1, 0, 4026, 0, -353, -553, 0, -139},
	{0, 0, 2, 1, 2, 1660, 0, -5, -710, 0, -2},
	{-1, 0, 2, 4, 2, -1521, 0, 9, 647, 0, 4},
	{-1, 1, 0, 1, 1, 1314, 0, 0, -700, 0, 0},
	{0, -2, 2, -2, 1, -1283, 0, 0, 672, 0, 0},
	{1, 0, 2, 2, 1, -1331, 0, 8, 663, 0, 4},
	{-2, 0, 2, 2, 2, 1383, 0, -2, -594, 0, -2},
	{-1, 0, 0, 0, 2, 1405, 0, 4, -610, 0, 2},
	{1, 1, 2, -2, 2, 1290, 0, 0, -556, 0, 0},
}

// nutation1980Terms holds the 106-term IAU 1980 nutation series. Amplitudes are
// in 0.1 mas.
var nutation1980Terms = [...]nutation1980Term{
	{0, 0, 0, 0, 1, -171996, -174.2, 92025, 8.9},
	{0, 0, 0, 0, 2, 2062, 0.2, -895, 0.5},
	{-2, 0, 2, 0, 1, 46, 0, -24, 0},
	{2, 0, -2, 0, 0, 11, 0, 0, 0},
	{-2, 0, 2, 0, 2, -3, 0, 1, 0},
	{1, -1, 0, -1, 0, -3, 0, 0, 0},
	{0, -2, 2, -2, 1, -2, 0, 1, 0},
	{2, 0, -2, 0, 1, 1, 0, 0, 0},
	{0, 0, 2, -2, 2, -13187, -1.6, 5736, -3.1},
	{0, 1, 0, 0, 0, 1426, -3.4, 54, -0.1},
	{0, 1, 2, -2, 2, -517, 1.2, 224, -0.6},
	{0, -1, 2, -2, 2, 217, -0.5, -95, 0.3},
	{0, 0, 2, -2, 1, 129, 0.1, -70, 0},
	{2, 0, 0, -2, 0, 48, 0, 1, 0},
	{0, 0, 2, -2, 0, -22, 0, 0, 0},
	{0, 2, 0, 0, 0, 17, -0.1, 0, 0},
	{0, 1, 0, 0, 1, -15, 0, 9, 0},
	{0, 2, 2, -2, 2, -16, 0.1, 7, 0},
	{0, -1, 0, 0, 1, -12, 0, 6, 0},
	{-2, 0, 0, 2, 1, -6, 0, 3, 0},
	{0, -1, 2, -2, 1, -5, 0, 3, 0},
	{2, 0, 0, -2, 1, 4, 0, -2, 0},
	{0, 1, 2, -2, 1, 4, 0, -2, 0},
	{1, 0, 0, -1, 0, -4, 0, 0, 0},
	{2, 1, 0, -2, 0, 1, 0, 0, 0},
	{0, 0, -2, 2, 1, 1, 0, 0, 0},
	{0, 1, -2, 2, 0, -1, 0, 0, 0},
	{0, 1, 0, 0, 2, 1, 0, 0, 0},
	{-1, 0, 0, 1, 1, 1, 0, 0, 0},
	{0, 1, 2, -2, 0, -1, 0, 0, 0},
	{0, 0, 2, 0, 2, -2274, -0.2, 977, -0.5},
	{1, 0, 0, 0, 0, 712, 0.1, -7, 0},
	{0, 0, 2, 0, 1, -386, -0.4, 200, 0},
	{1, 0, 2, 0, 2, -301, 0, 129, -0.1},
	{1, 0, 0, -2, 0, -158, 0, -1, 0},
	{-1, 0, 2, 0, 2, 123, 0, -53, 0},
	{0, 0, 0, 2, 0, 63, 0, -2, 0},
	{1, 0, 0, 0, 1, 63, 0.1, -33, 0},
	{-1, 0, 0, 0, 1, -58, -0.1, 32, 0},
	{-1, 0, 2, 2, 2, -59, 0, 26, 0},
	{1, 0, 2, 0, 1, -51, 0, 27, 0},
	{0, 0, 2, 2, 2, -38, 0, 16, 0},
	{2, 0, 0, 0, 0, 29, 0, -1, 0},
	{1, 0, 2, -2, 2, 29, 0, -12, 0},
	{2, 0, 2, 0, 2, -31, 0, 13, 0},
	{0, 0, 2, 0, 0, 26, 0, -1, 0},
	{-1, 0, 2, 0, 1, 21, 0, -10, 0},
	{-1, 0, 0, 2, 1, 16, 0, -8, 0},
	{1, 0, 0, -2, 1, -13, 0, 7, 0},
	{-1, 0, 2, 2, 1, -10, 0, 5, 0},
	{1, 1, 0, -2, 0, -7, 0, 0, 0},
	{0, 1, 2, 0, 2, 7, 0, -3, 0},
	{0, -1, 2, 0, 2, -7, 0, 3, 0},
	{1, 0, 2, 2, 2, -8, 0, 3, 0},
	{1, 0, 0, 2, 0, 6, 0, 0, 0},
	{2, 0, 2, -2, 2, 6, 0, -3, 0},
	{0, 0, 0, 2, 1, -6, 0, 3, 0},
	{0, 0, 2, 2, 1, -7, 0, 3, 0},
	{1, 0, 2, -2, 1, 6, 0, -3, 0},
	{0, 0, 0, -2, 1, -5, 0, 3, 0},
	{1, -1, 0, 0, 0, 5, 0, 0, 0},
	{2, 0, 2, 0, 1, -5, 0, 3, 0},
	{0, 1, 0, -2, 0, -4, 0, 0, 0},
	{1, 0, -2, 0, 0, 4, 0, 0, 0},
	{0, 0, 0, 1, 0, -4, 0, 0, 0},
	{1, 1, 0, 0, 0, -3, 0, 0, 0},
	{1, 0, 2, 0, 0, 3, 0, 0, 0},
	{1, -1, 2, 0, 2, -3, 0, 1, 0},
	{-1, -1, 2, 2, 2, -3, 0, 1, 0},
	{-2, 0, 0, 0, 1, -2, 0, 1, 0},
	{3, 0, 2, 0, 2, -3, 0, 1, 0},
	{0, -1, 2, 2, 2, -3, 0, 1, 0},
	{1, 1, 2, 0, 2, 2, 0, -1, 0},
	{-1, 0, 2, -2, 1, -2, 0, 1, 0},
	{2, 0, 0, 0, 1, 2, 0, -1, 0},
	{1, 0, 0, 0, 2, -2, 0, 1, 0},
	{3, 0, 0, 0, 0, 2, 0, 0, 0},
	{0, 0, 2, 1, 2, 2, 0, -1, 0},
	{-1, 0, 0, 0, 2, 1, 0, -1, 0},
	{1, 0, 0, -4, 0, -1, 0, 0, 0},
	{-2, 0, 2, 2, 2, 1, 0, -1, 0},
	{-1, 0, 2, 4, 2, -2, 0, 1, 0},
	{2, 0, 0, -4, 0, -1, 0, 0, 0},
	{1, 1, 2, -2, 2, 1, 0, -1, 0},
	{1, 0, 2, 2, 1, -1, 0, 1, 0},
	{-2, 0, 2, 4, 2, -1, 0, 1, 0},
	{-1, 0, 4, 0, 2, 1, 0, 0, 0},
	{1, -1, 0, -2, 0, 1, 0, 0, 0},
	{2, 0, 2, -2, 1, 1, 0, -1, 0},
	{2, 0, 2, 2, 2, -1, 0, 0, 0},
	{1, 0, 0, 2, 1, -1, 0, 0, 0},
	{0, 0, 4, -2, 2, 1, 0, 0, 0},
	{3, 0, 2, -2, 2, 1, 0, 0, 0},
	{1, 0, 2, -2, 0, -1, 0, 0, 0},
	{0, 1, 2, 0, 1, 1, 0, 0, 0},
	{-1, -1, 0, 2, 1, 1, 0, 0, 0},
	{0, 0, -2, 0, 1, -1, 0, 0, 0},
	{0, 0, 2, -1, 2, -1, 0, 0, 0},
	{0, 1, 0, 2, 0, -1, 0, 0, 0},
	{1, 0, -2, -2, 0, -1, 0, 0, 0},
	{0, -1, 2, 0, 1, -1, 0, 0, 0},
	{1, 1, 0, -2, 1, -1, 0, 0, 0},
	{1, 0, -2, 2, 0, -1, 0, 0, 0},
	{2, 0, 0, 2, 0, 1, 0, 0, 0},
	{0, 0, 2, 4, 2, -1, 0, 0, 0},
	{0, 1, 0, 1, 0, 1, 0, 0, 0},
}

var cioTerms0 = [...]cioTerm{
	{[8]float64{0, 0, 0, 0, 1, 0, 0, 0}, -2640.73e-6, 0.39e-6},
	{[8]float64{0, 0, 0, 0, 2, 0, 0, 0}, -63.53e-6, 0.02e-6},
	{[8]float64{0, 0, 2, -2, 3, 0, 0, 0}, -11.75e-6, -0.01e-6},
	{[8]float64{0, 0, 2, -2, 1, 0, 0, 0}, -11.21e-6, -0.01e-6},
	{[8]float64{0, 0, 2, -2, 2, 0, 0, 0}, 4.57e-6, 0.00e-6},
	{[8]float64{0, 0, 2, 0, 3, 0, 0, 0}, -2.02e-6, 0.00e-6},
	{[8]float64{0, 0, 2, 0, 1, 0, 0, 0}, -1.98e-6, 0.00e-6},
	{[8]float64{0, 0, 0, 0, 3, 0, 0, 0}, 1.72e-6, 0.00e-6},
	{[8]float64{0, 1, 0, 0, 1, 0, 0, 0}, 1.41e-6, 0.01e-6},
	{[8]float64{0, 1, 0, 0, -1, 0, 0, 0}, 1.26e-6, 0.01e-6},
	{[8]float64{1, 0, 0, 0, -1, 0, 0, 0}, 0.63e-6, 0.00e-6},
	{[8]float64{1, 0, 0, 0, 1, 0, 0, 0}, 0.63e-6, 0.00e-6},
	{[8]float64{0, 1, 2, -2, 3, 0, 0, 0}, -0.46e-6, 0.00e-6},
	{[8]float64{0, 1, 2, -2, 1, 0, 0, 0}, -0.45e-6, 0.00e-6},
	{[8]float64{0, 0, 4, -4, 4, 0, 0, 0}, -0.36e-6, 0.00e-6},
	{[8]float64{0, 0, 1, -1, 1, -8, 12, 0}, 0.24e-6, 0.12e-6},
	{[8]float64{0, 0, 2, 0, 0, 0, 0, 0}, -0.32e-6, 0.00e-6},
	{[8]float64{0, 0, 2, 0, 2, 0, 0, 0}, -0.28e-6, 0.00e-6},
	{[8]float64{1, 0, 2, 0, 3, 0, 0, 0}, -0.27e-6, 0.00e-6},
	{[8]float64{1, 0, 2, 0, 1, 0, 0, 0}, -0.26e-6, 0.00e-6},
	{[8]float64{0, 0, 2, -2, 0, 0, 0, 0}, 0.21e-6, 0.00e-6},
	{[8]float64{0, 1, -2, 2, -3, 0, 0, 0}, -0.19e-6, 0.00e-6},
	{[8]float64{0, 1, -2, 2, -1, 0, 0, 0}, -0.18e-6, 0.00e-6},
	{[8]float64{0, 0, 0, 0, 0, 8, -13, -1}, 0.10e-6, -0.05e-6},
	{[8]float64{0, 0, 0, 2, 0, 0, 0, 0}, -0.15e-6, 0.00e-6},
	{[8]float64{2, 0, -2, 0, -1, 0, 0, 0}, 0.14e-6, 0.00e-6},
	{[8]float64{0, 1, 2, -2, 2, 0, 0, 0}, 0.14e-6, 0.00e-6},
	{[8]float64{1, 0, 0, -2, 1, 0, 0, 0}, -0.14e-6, 0.00e-6},
	{[8]float64{1, 0, 0, -2, -1, 0, 0, 0}, -0.14e-6, 0.00e-6},
	{[8]float64{0, 0, 4, -2, 4, 0, 0, 0}, -0.13e-6, 0.00e-6},
	{[8]float64{0, 0, 2, -2, 4, 0, 0, 0}, 0.11e-6, 0.00e-6},
	{[8]float64{1, 0, -2, 0, -3, 0, 0, 0}, -0.11e-6, 0.00e-6},
	{[8]float64{1, 0, -2, 0, -1, 0, 0, 0}, -0.11e-6, 0.00e-6},
}

var cioTerms1 = [...]cioTerm{
	{[8]float64{0, 0, 0, 0, 2, 0, 0, 0}, -0.07e-6, 3.57e-6},
	{[8]float64{0, 0, 0, 0, 1, 0, 0, 0}, 1.73e-6, -0.03e-6},
	{[8]float64{0, 0, 2, -2, 3, 0, 0, 0}, 0.00e-6, 0.48e-6},
}

var cioTerms2 = [...]cioTerm{
	{[8]float64{0, 0, 0, 0, 1, 0, 0, 0}, 743.52e-6, -0.17e-6},
	{[8]float64{0, 0, 2, -2, 2, 0, 0, 0}, 56.91e-6, 0.06e-6},
	{[8]float64{0, 0, 2, 0, 2, 0, 0, 0}, 9.84e-6, -0.01e-6},
	{[8]float64{0, 0, 0, 0, 2, 0, 0, 0}, -8.85e-6, 0.01e-6},
	{[8]float64{0, 1, 0, 0, 0, 0, 0, 0}, -6.38e-6, -0.05e-6},
	{[8]float64{1, 0, 0, 0, 0, 0, 0, 0}, -3.07e-6, 0.00e-6},
	{[8]float64{0, 1, 2, -2, 2, 0, 0, 0}, 2.23e-6, 0.00e-6},
	{[8]float64{0, 0, 2, 0, 1, 0, 0, 0}, 1.67e-6, 0.00e-6},
	{[8]float64{1, 0, 2, 0, 2, 0, 0, 0}, 1.30e-6, 0.00e-6},
	{[8]float64{0, 1, -2, 2, -2, 0, 0, 0}, 0.93e-6, 0.00e-6},
	{[8]float64{1, 0, 0, -2, 0, 0, 0, 0}, 0.68e-6, 0.00e-6},
	{[8]float64{0, 0, 2, -2, 1, 0, 0, 0}, -0.55e-6, 0.00e-6},
	{[8]float64{1, 0, -2, 0, -2, 0, 0, 0}, 0.53e-6, 0.00e-6},
	{[8]float64{0, 0, 0, 2, 0, 0, 0, 0}, -0.27e-6, 0.00e-6},
	{[8]float64{1, 0, 0, 0, 1, 0, 0, 0}, -0.27e-6, 0.00e-6},
	{[8]float64{1, 0, -2, -2, -2, 0, 0, 0}, -0.26e-6, 0.00e-6},
	{[8]float64{1, 0, 0, 0, -1, 0, 0, 0}, -0.25e-6, 0.00e-6},
	{[8]float64{1, 0, 2, 0, 1, 0, 0, 0}, 0.22e-6, 0.00e-6},
	{[8]float64{2, 0, 0, -2, 0, 0, 0, 0}, -0.21e-6, 0.00e-6},
	{[8]float64{2, 0, -2, 0, -1, 0, 0, 0}, 0.20e-6, 0.00e-6},
	{[8]float64{0, 0, 2, 2, 2, 0, 0, 0}, 0.17e-6, 0.00e-6},
	{[8]float64{2, 0, 2, 0, 2, 0, 0, 0}, 0.13e-6, 0.00e-6},
	{[8]float64{2, 0, 0, 0, 0, 0, 0, 0}, -0.13e-6, 0.00e-6},
	{[8]float64{1, 0, 2, -2, 2, 0, 0, 0}, -0.12e-6, 0.00e-6},
	{[8]float64{0, 0, 2, 0, 0, 0, 0, 0}, -0.11e-6, 0.00e-6},
}

var cioTerms3 = [...]cioTerm{
	{[8]float64{0, 0, 0, 0, 1, 0, 0, 0}, 0.30e-6, -23.42e-6},
	{[8]float64{0, 0, 2, -2, 2, 0, 0, 0}, -0.03e-6, -1.46e-6},
	{[8]float64{0, 0, 2, 0, 2, 0, 0, 0}, -0.01e-6, -0.25e-6},
	{[8]float64{0, 0, 0, 0, 2, 0, 0, 0}, 0.00e-6, 0.23e-6},
}

var cioTerms4 = [...]cioTerm{
	{[8]float64{0, 0, 0, 0, 1, 0, 0, 0}, -0.26e-6, -0.01e-6},
}

// cioPolynomial holds the polynomial part of s + XY/2 in arcseconds.
var cioPolynomial = [6]float64{94.00e-6, 3808.65e-6, -122.68e-6, -72574.11e-6, 27.98e-6, 15.62e-6}

// equinoxTerms0 and equinoxTerms1 are the complementary terms of the
// equation of the equinoxes, constant and t¹, in arcseconds.
var equinoxTerms0 = [...]cioTerm{
	{[8]float64{0, 0, 0, 0, 1, 0, 0, 0}, 2640.96e-6, -0.39e-6},
	{[8]float64{0, 0, 0, 0, 2, 0, 0, 0}, 63.52e-6, -0.02e-6},
	{[8]float64{0, 0, 2, -2, 3, 0, 0, 0}, 11.75e-6, 0.01e-6},
	{[8]float64{0, 0, 2, -2, 1, 0, 0, 0}, 11.21e-6, 0.01e-6},
	{[8]float64{0, 0, 2, -2, 2, 0, 0, 0}, -4.55e-6, 0.00e-6},
	{[8]float64{0, 0, 2, 0, 3, 0, 0, 0}, 2.02e-6, 0.00e-6},
	{[8]float64{0, 0, 2, 0, 1, 0, 0, 0}, 1.98e-6, 0.00e-6},
	{[8]float64{0, 0, 0, 0, 3, 0, 0, 0}, -1.72e-6, 0.00e-6},
	{[8]float64{0, 1, 0, 0, 1, 0, 0, 0}, -1.41e-6, -0.01e-6},
	{[8]float64{0, 1, 0, 0, -1, 0, 0, 0}, -1.26e-6, -0.01e-6},
	{[8]float64{1, 0, 0, 0, -1, 0, 0, 0}, -0.63e-6, 0.00e-6},
	{[8]float64{1, 0, 0, 0, 1, 0, 0, 0}, -0.63e-6, 0.00e-6},
	{[8]float64{0, 1, 2, -2, 3, 0, 0, 0}, 0.46e-6, 0.00e-6},
	{[8]float64{0, 1, 2, -2, 1, 0, 0, 0}, 0.45e-6, 0.00e-6},
	{[8]float64{0, 0, 4, -4, 4, 0, 0, 0}, 0.36e-6, 0.00e-6},
	{[8]float64{0, 0, 1, -1, 1, -8, 12, 0}, -0.24e-6, -0.12e-6},
	{[8]float64{0, 0, 2, 0, 0, 0, 0, 0}, 0.32e-6, 0.00e-6},
	{[8]float64{0, 0, 2, 0, 2, 0, 0, 0}, 0.28e-6, 0.00e-6},
	{[8]float64{1, 0, 2, 0, 3, 0, 0, 0}, 0.27e-6, 0.00e-6},
	{[8]float64{1, 0, 2, 0, 1, 0, 0, 0}, 0.26e-6, 0.00e-6},
	{[8]float64{0, 0, 2, -2, 0, 0, 0, 0}, -0.21e-6, 0.00e-6},
	{[8]float64{0, 1, -2, 2, -3, 0, 0, 0}, 0.19e-6, 0.00e-6},
	{[8]float64{0, 1, -2, 2, -1, 0, 0, 0}, 0.18e-6, 0.00e-6},
	{[8]float64{0, 0, 0, 0, 0, 8, -13, -1}, -0.10e-6, 0.05e-6},
	{[8]float64{0, 0, 0, 2, 0, 0, 0, 0}, 0.15e-6, 0.00e-6},
	{[8]float64{2, 0, -2, 0, -1, 0, 0, 0}, -0.14e-6, 0.00e-6},
	{[8]float64{1, 0, 0, -2, 1, 0, 0, 0}, 0.14e-6, 0.00e-6},
	{[8]float64{0, 1, 2, -2, 2, 0, 0, 0}, -0.14e-6, 0.00e-6},
	{[8]float64{1, 0, 0, -2, -1, 0, 0, 0}, 0.14e-6, 0.00e-6},
	{[8]float64{0, 0, 4, -2, 4, 0, 0, 0}, 0.13e-6, 0.00e-6},
	{[8]float64{0, 0, 2, -2, 4, 0, 0, 0}, -0.11e-6, 0.00e-6},
	{[8]float64{1, 0, -2, 0, -3, 0, 0, 0}, 0.11e-6, 0.00e-6},
	{[8]float64{1, 0, -2, 0, -1, 0, 0, 0}, 0.11e-6, 0.00e-6},
}

var equinoxTerms1 = [...]cioTerm{
	{[8]float64{0, 0, 0, 0, 1, 0, 0, 0}, -0.87e-6, 0.00e-6},
}
