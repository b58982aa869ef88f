package emsa1

// Reference encodings computed independently of this package with a
// big-integer implementation of the same truncation rule.

type vector struct {
	msg      []byte
	expected string // decimal field value
}

var msgs = [][]byte{
	[]byte(""),
	[]byte("abc"),
	[]byte("This is a tasty burger!"),
	{0, 0, 0, 0, 1},
	[]byte("The quick brown fox jumps over the lazy dog"),
}

var vectorsP256SHA256 = []vector{
	{msgs[0], "102987336249554097029535212322581322789799900648198034993379397001115665086549"},
	{msgs[1], "84342368487090800366523834928142263660104883695016514377462985829716817089965"},
	{msgs[2], "111474717792720247796999809655932432881783035037226574051829933946736885398526"},
	{msgs[3], "9927814557662281707386258743668099507905114286705484966620493544960066992308"},
	{msgs[4], "97545829917274378450420493068633403634366097923610927113640139683520194405778"},
}

var vectorsP256SHA512 = []vector{
	{msgs[0], "93861770957395276492717477787726143810336548400896766194917568669650606942670"},
	{msgs[1], "100270707921866889979099059860776879800317523071523281642249134657699027735450"},
	{msgs[2], "10111850614874249519831253685464910567647666728227830391028831074873518503096"},
	{msgs[3], "83647744931018240680048339543049529709025860413551492689152030285844483908144"},
	{msgs[4], "3571293801529479113466200929483063130722373151011788227526717918419165625188"},
}

var vectorsBLS12381SHA1 = []vector{
	{msgs[0], "1245845410931227995499360226027473197403882391305"},
	{msgs[1], "968236873715988614170569073515315707566766479517"},
	{msgs[2], "950423077014225933845641436926477390453549721362"},
	{msgs[3], "996214218309465139763577874080364196331786973213"},
	{msgs[4], "273069992013452546326057769888623105462687230738"},
}

var vectorsBLS12381SHA256 = []vector{
	{msgs[0], "51493668124777048514767606161290661394899950324099017496689698500557832543274"},
	{msgs[1], "42171184243545400183261917464071131830052441847508257188731492914858408544982"},
	{msgs[2], "3301483721233933419052164319780250603200965018085649203311308273429861514750"},
	{msgs[3], "4963907278831140853693129371834049753952557143352742483310246772480033496154"},
	{msgs[4], "48772914958637189225210246534316701817183048961805463556820069841760097202889"},
}

var vectorsBN254SHA256 = []vector{
	{msgs[0], "3858591190549249035137397335388055608901610761633474404646645063703107776020"},
	{msgs[1], "21085592121772700091630958732035565915026220923754128594365746457429204272491"},
	{msgs[2], "5980436576340786727003546668725833131897394358890609169259279300108412854014"},
	{msgs[3], "2481953639415570426846564685917024876976278571676371241655123386240016748077"},
	{msgs[4], "2498214607479319390358717521901075820043160080486697434711830734304240105827"},
}

var vectorsSecp256k1SHA3_256 = []vector{
	{msgs[0], "75988164966894747974200307809782762084705920897667750218208675113520516842314"},
	{msgs[1], "26503352344809812503781852260497330104742418796726218580378611674310760404274"},
	{msgs[2], "49399603107877985297987197224373750000297873742655607860954502317866599817525"},
	{msgs[3], "69286573015202404449879571301235330508525344916452335713130570924140801673381"},
	{msgs[4], "47505312630834879991919109329304521764701442271805186201232684387966658673668"},
}

var vectorsP384SHA512 = []vector{
	{msgs[0], "31939505584773465005620890798056741621739314031341029824860448518216798897737241507617516582652589653492079546788911"},
	{msgs[1], "34120353824490960143098436305942938640707210727115387801261675653643384088275096667924478097692642481705853325863869"},
	{msgs[2], "3440884461180356587116014024984141746558945735610156588013649950810838180083356238936574309797221416915928422204601"},
	{msgs[3], "28463852632725819416712518540891302015195015511911501630184789628328537086997175475235904842332347273256281395138232"},
	{msgs[4], "1215248307754527397634693720569291085884271466663456152743697278187992552902023823677600902500918644515399024729814"},
}

var vectorsP521SHA512 = []vector{
	{msgs[0], "10868450558671247443152026947160338505683745266658651051718065983487878962987857602829315249215796444208488632888003673539585986066311769564391053988452926"},
	{msgs[1], "11610554759577678887058616627522426787358414133166247019097754655123425531747192578669846860198531688061507751898313498051436198428987376028989280584770719"},
	{msgs[2], "1170872308751929740821961616458853444159118601322070053840253684159932900002298970981172696653103385777025462967593536175398774761384217650745079965686609"},
	{msgs[3], "9685747145552727568238121924641171989809882572194168974868248347663046060864312463992651075576029301154315557785841426548132687795008104098571587315265900"},
	{msgs[4], "413527570559375639348877033327620681808055396793837851551466337601832678405811208587372508373607520108621677788397416481775924390353949250159922707234534"},
}

var vectorsBabyBearSHA256 = []vector{
	{msgs[0], "1910006305"},
	{msgs[1], "1564216159"},
	{msgs[2], "54147623"},
	{msgs[3], "184121554"},
	{msgs[4], "1809087961"},
}

var vectorsBLS12381BLAKE2b512 = []vector{
	{msgs[0], "27232424044204580689262843574472773327686438638968243516051936886472112581132"},
	{msgs[1], "42178743381711076294548382827381985342352694287474618228586400552199858934120"},
	{msgs[2], "8618279184086429878713468669202296955653602150026598427895835039759975416496"},
	{msgs[3], "15629639481467546388458253615422044884133708903252675508128700061386686754781"},
	{msgs[4], "38147845696614592851562905353481640868262789043325781633698065428605220789049"},
}

var vectorsBN254SHA3_512 = []vector{
	{msgs[0], "18841415191466421092074567109164599130527258984075144147408819392701837811753"},
	{msgs[1], "20729321033645570053789860455842728592738983308141043552627152444833595169867"},
	{msgs[2], "12301531544670153857596672222049729184868876091810669315908643651398549273000"},
	{msgs[3], "21180048440749132601774755878000911998684666005712542141843981200966881032853"},
	{msgs[4], "211520178572825658559693896459248887404963462716957372007065485920055661567"},
}

var vectorsSecp256k1BLAKE2b256 = []vector{
	{msgs[0], "6486659796661480009679813770337136512253847759462969237328633784501934220200"},
	{msgs[1], "85878493536882066363816613034202589079833418882055025176623444362418554479385"},
	{msgs[2], "86227693263257352402385028201493806460097881130831382759555656713332805995780"},
	{msgs[3], "42396639792180434634043983550533600355074669721850391282577553683862244416903"},
	{msgs[4], "652939179605170296536316383208207487821308492015448253788016199162227742889"},
}
