package bodies

// Rotational-element models of the IAU Working Group on Cartographic
// Coordinates and Rotational Elements (2009 report).

var sunModel = &model{
	ra:  degrees(286.13, 0, 0),
	dec: degrees(63.87, 0, 0),
	w:   degrees(84.176, 14.1844000, 0),
}

var mercuryModel = &model{
	ra:  degrees(281.0097, -0.0328, 0),
	dec: degrees(61.4143, -0.0049, 0),
	w:   degrees(329.5469, 6.1385025, 0),
}

var venusModel = &model{
	ra:  degrees(272.76, 0, 0),
	dec: degrees(67.16, 0, 0),
	w:   degrees(160.20, -1.4813688, 0),
}

var earthModel = &model{
	ra:  degrees(0, -0.641, 0),
	dec: degrees(90, -0.557, 0),
	w:   degrees(190.147, 360.9856235, 0),
}

var moonModel = &model{
	np: dailyAngles(
		[]float64{125.045, 250.089, 260.008, 176.625, 357.529, 311.589, 134.963, 276.617, 34.226, 15.134, 119.743, 239.961, 25.053},
		[]float64{-0.0529921, -0.1059842, 13.0120009, 13.3407154, 0.9856003, 26.4057084, 13.0649930, 0.3287146, 1.7484877, -0.1589763, 0.0036096, 0.1643573, 12.9590088},
	),
	ra:  degrees(269.9949, 0.0031, 0, -3.8787, -0.1204, 0.0700, -0.0172, 0, 0.0072, 0, 0, 0, -0.0052, 0, 0, 0.0043),
	dec: degrees(66.5392, 0.0130, 0, 1.5419, 0.0239, -0.0278, 0.0068, 0, -0.0029, 0.0009, 0, 0, 0.0008, 0, 0, -0.0009),
	w:   degrees(38.3213, 13.17635815, -1.4e-12, 3.5610, 0.1208, -0.0642, 0.0158, 0.0252, -0.0066, -0.0047, -0.0046, 0.0028, 0.0052, 0.0040, 0.0019, -0.0044),
}

var marsModel = &model{
	ra:  degrees(317.68143, -0.1061, 0),
	dec: degrees(52.88650, -0.0609, 0),
	w:   degrees(176.630, 350.89198226, 0),
}

var jupiterModel = &model{
	np: nutationPrecession{
		theta0: []float64{
			1.2796754075622423, 0.42970006184100396, 4.9549897464119015, 6.2098814785958245,
			2.092649773141201, 4.010766621082969, 6.147922290150026, 1.9783307071355725,
			2.5593508151244846, 0.8594001236820079, 1.734171606432425, 3.0699533280603655,
			5.241627996900319, 1.9898901100379935, 0.864134346731335,
		},
		theta1: []float64{
			1596.503281347521, 787.7927551311844, 84.66068602648895, 20.792107379008446,
			4.574507969477138, 1.1222467090323538, 41.58421475801689, 105.9414855960558,
			3193.006562695042, 1575.5855102623689, 84.65553032387855, 20.80363527871787,
			4.582318317879813, 105.94580703128374, 1.1222467090323538,
		},
	},
	ra: element{
		c0: 4.6784701644349695,
		c1: -0.00011342894808711148,
		trig: []float64{
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			2.0420352248333656e-6, 1.6371188383706813e-5, 2.4993114888558796e-5,
			5.235987755982989e-7, 3.752457891787809e-5,
		},
	},
	dec: element{
		c0: 1.1256553894213766,
		c1: 4.211479485062318e-5,
		trig: []float64{
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			8.726646259971648e-7, 7.051130178057092e-6, 1.0768681484805013e-5,
			-2.2689280275926283e-7, 1.616174887346749e-5,
		},
	},
	w: element{c0: 4.973315703557842, c1: 15.193719457141356},
}

var saturnModel = &model{
	ra:  degrees(40.589, -0.036, 0),
	dec: degrees(83.537, -0.004, 0),
	w:   degrees(38.90, 810.7939024, 0),
}

var uranusModel = &model{
	ra:  degrees(257.311, 0, 0),
	dec: degrees(-15.175, 0, 0),
	w:   degrees(203.81, -501.1600928, 0),
}

// Neptune's terms are evaluated at N = 357.85° + 52.316°·T.
var neptuneModel = &model{
	np: nutationPrecession{
		theta0: []float64{357.85 * deg},
		theta1: []float64{52.316 * deg},
	},
	ra:  degrees(299.36, 0, 0, 0.70),
	dec: degrees(43.46, 0, 0, -0.51),
	w:   degrees(249.978, 541.1397757, 0, -0.48),
}

var plutoModel = &model{
	ra:  degrees(132.993, 0, 0),
	dec: degrees(-6.163, 0, 0),
	w:   degrees(302.695, 56.3625225, 0),
}
